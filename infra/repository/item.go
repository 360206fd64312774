package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mhaefliger/grocery/pkg/dto"
	"github.com/mhaefliger/grocery/pkg/repository"
)

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates an item repository using the provided *gorm.DB.
func NewItemRepository(db *gorm.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

// Create implements repository.ItemRepository.
func (r *itemRepository) Create(ctx context.Context, create dto.ItemCreate) (*dto.ItemRead, error) {
	item := Item{
		ReceiptID:       create.ReceiptID,
		Name:            create.Name,
		Brand:           create.Brand,
		CategoryID:      create.CategoryID,
		Quantity:        create.Quantity,
		Unit:            create.Unit,
		PricePerUnit:    create.PricePerUnit,
		TotalPrice:      create.TotalPrice,
		NormalizedPrice: create.NormalizedPrice,
		NormalizedUnit:  create.NormalizedUnit,
		OriginalPrice:   create.OriginalPrice,
		Notes:           create.Notes,
	}
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapItemToDTO(&item), nil
}

// ListByReceipt implements repository.ItemRepository.
func (r *itemRepository) ListByReceipt(ctx context.Context, receiptID uint) ([]*dto.ItemRead, error) {
	var items []Item
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("receipt_id = ?", receiptID).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	result := make([]*dto.ItemRead, 0, len(items))
	for i := range items {
		result = append(result, mapItemToDTO(&items[i]))
	}
	return result, nil
}

// DeleteByReceipt implements repository.ItemRepository.
func (r *itemRepository) DeleteByReceipt(ctx context.Context, receiptID uint) error {
	err := r.db.WithContext(ctx).Where("receipt_id = ?", receiptID).Delete(&Item{}).Error
	return MapGormErrorToDomain(err)
}

// DistinctNames implements repository.ItemRepository.
func (r *itemRepository) DistinctNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&Item{}).
		Distinct("name").Order("name").
		Pluck("name", &names).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return names, nil
}

// mapItemToDTO maps a GORM model to a read-optimized DTO.
func mapItemToDTO(item *Item) *dto.ItemRead {
	read := &dto.ItemRead{
		ID:              item.ID,
		ReceiptID:       item.ReceiptID,
		Name:            item.Name,
		Brand:           item.Brand,
		CategoryID:      item.CategoryID,
		Quantity:        item.Quantity,
		Unit:            item.Unit,
		PricePerUnit:    item.PricePerUnit,
		TotalPrice:      item.TotalPrice,
		NormalizedPrice: item.NormalizedPrice,
		NormalizedUnit:  item.NormalizedUnit,
		OriginalPrice:   item.OriginalPrice,
		Notes:           item.Notes,
	}
	if item.Category != nil {
		name := item.Category.Name
		read.CategoryName = &name
	}
	return read
}
