package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mhaefliger/grocery/pkg/dto"
	"github.com/mhaefliger/grocery/pkg/repository"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a category repository using the provided *gorm.DB.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// Create implements repository.CategoryRepository. A duplicate name surfaces
// as domain.ErrAlreadyExists via the unique index on categories.name.
func (r *categoryRepository) Create(ctx context.Context, create dto.CategoryCreate) (*dto.CategoryRead, error) {
	cat := Category{
		Name:     create.Name,
		ParentID: create.ParentID,
		Icon:     create.Icon,
		Color:    create.Color,
	}
	if err := r.db.WithContext(ctx).Create(&cat).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapCategoryToDTO(&cat), nil
}

// Get implements repository.CategoryRepository.
func (r *categoryRepository) Get(ctx context.Context, id uint) (*dto.CategoryRead, error) {
	var cat Category
	if err := r.db.WithContext(ctx).First(&cat, "id = ?", id).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapCategoryToDTO(&cat), nil
}

// GetByName implements repository.CategoryRepository.
func (r *categoryRepository) GetByName(ctx context.Context, name string) (*dto.CategoryRead, error) {
	var cat Category
	if err := r.db.WithContext(ctx).First(&cat, "name = ?", name).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapCategoryToDTO(&cat), nil
}

// List implements repository.CategoryRepository.
func (r *categoryRepository) List(ctx context.Context, topLevelOnly bool) ([]*dto.CategoryRead, error) {
	q := r.db.WithContext(ctx).Model(&Category{}).Order("name")
	if topLevelOnly {
		q = q.Where("parent_id IS NULL")
	}
	var cats []Category
	if err := q.Find(&cats).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	result := make([]*dto.CategoryRead, 0, len(cats))
	for i := range cats {
		result = append(result, mapCategoryToDTO(&cats[i]))
	}
	return result, nil
}

func mapCategoryToDTO(cat *Category) *dto.CategoryRead {
	return &dto.CategoryRead{
		ID:        cat.ID,
		Name:      cat.Name,
		ParentID:  cat.ParentID,
		Icon:      cat.Icon,
		Color:     cat.Color,
		CreatedAt: cat.CreatedAt,
	}
}
