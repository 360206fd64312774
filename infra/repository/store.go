package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mhaefliger/grocery/pkg/dto"
	"github.com/mhaefliger/grocery/pkg/repository"
)

type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository creates a store repository using the provided *gorm.DB.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// Create implements repository.StoreRepository. A duplicate name surfaces as
// domain.ErrAlreadyExists via the unique index on stores.name.
func (r *storeRepository) Create(ctx context.Context, create dto.StoreCreate) (*dto.StoreRead, error) {
	store := Store{
		Name:     create.Name,
		Location: create.Location,
	}
	if err := r.db.WithContext(ctx).Create(&store).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapStoreToDTO(&store), nil
}

// GetByName implements repository.StoreRepository.
func (r *storeRepository) GetByName(ctx context.Context, name string) (*dto.StoreRead, error) {
	var store Store
	if err := r.db.WithContext(ctx).First(&store, "name = ?", name).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapStoreToDTO(&store), nil
}

// List implements repository.StoreRepository.
func (r *storeRepository) List(ctx context.Context) ([]*dto.StoreRead, error) {
	var stores []Store
	if err := r.db.WithContext(ctx).Order("name").Find(&stores).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	result := make([]*dto.StoreRead, 0, len(stores))
	for i := range stores {
		result = append(result, mapStoreToDTO(&stores[i]))
	}
	return result, nil
}

func mapStoreToDTO(store *Store) *dto.StoreRead {
	return &dto.StoreRead{
		ID:        store.ID,
		Name:      store.Name,
		Location:  store.Location,
		CreatedAt: store.CreatedAt,
	}
}
