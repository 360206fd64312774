package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/mhaefliger/grocery/pkg/dto"
	"github.com/mhaefliger/grocery/pkg/repository"
)

type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a receipt repository using the provided *gorm.DB.
func NewReceiptRepository(db *gorm.DB) repository.ReceiptRepository {
	return &receiptRepository{db: db}
}

// Create implements repository.ReceiptRepository.
func (r *receiptRepository) Create(ctx context.Context, create dto.ReceiptCreate) (*dto.ReceiptRead, error) {
	rec := Receipt{
		Date:        create.Date,
		Store:       create.Store,
		Currency:    create.Currency,
		TotalAmount: create.TotalAmount,
		Notes:       create.Notes,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapReceiptToDTO(&rec), nil
}

// Get implements repository.ReceiptRepository. Items come back with their
// category names resolved.
func (r *receiptRepository) Get(ctx context.Context, id uint) (*dto.ReceiptRead, error) {
	var rec Receipt
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("items.id") }).
		Preload("Items.Category").
		First(&rec, "id = ?", id).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	read := mapReceiptToDTO(&rec)
	read.Items = make([]dto.ItemRead, 0, len(rec.Items))
	for i := range rec.Items {
		read.Items = append(read.Items, *mapItemToDTO(&rec.Items[i]))
	}
	return read, nil
}

// Update implements repository.ReceiptRepository. The header is always fully
// overwritten; a nil Notes clears the column.
func (r *receiptRepository) Update(ctx context.Context, id uint, update dto.ReceiptUpdate) error {
	err := r.db.WithContext(ctx).Model(&Receipt{}).Where("id = ?", id).Updates(map[string]any{
		"date":         update.Date,
		"store":        update.Store,
		"currency":     update.Currency,
		"total_amount": update.TotalAmount,
		"notes":        update.Notes,
	}).Error
	return MapGormErrorToDomain(err)
}

// Delete implements repository.ReceiptRepository.
func (r *receiptRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&Receipt{}, id)
	if res.Error != nil {
		return MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return MapGormErrorToDomain(gorm.ErrRecordNotFound)
	}
	return nil
}

// List implements repository.ReceiptRepository. Summaries carry per-receipt
// item counts; the item-name search runs as an EXISTS subquery so it does not
// skew the counts.
func (r *receiptRepository) List(ctx context.Context, filter dto.ReceiptFilter) ([]*dto.ReceiptSummary, error) {
	q := r.db.WithContext(ctx).Model(&Receipt{}).
		Select(`receipts.id AS receipt_id, receipts.date, receipts.store, receipts.currency,
			receipts.total_amount, COUNT(items.id) AS item_count, receipts.notes`).
		Joins("LEFT JOIN items ON items.receipt_id = receipts.id").
		Group("receipts.id")

	if filter.DateFrom != nil {
		q = q.Where("receipts.date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		q = q.Where("receipts.date <= ?", *filter.DateTo)
	}
	if len(filter.Stores) > 0 {
		q = q.Where("receipts.store IN ?", filter.Stores)
	}
	if filter.ItemSearch != "" {
		q = q.Where(
			"EXISTS (SELECT 1 FROM items i WHERE i.receipt_id = receipts.id AND LOWER(i.name) LIKE ?)",
			"%"+strings.ToLower(filter.ItemSearch)+"%",
		)
	}

	sortCols := map[string]string{
		dto.SortByDate:  "receipts.date",
		dto.SortByTotal: "receipts.total_amount",
		dto.SortByStore: "receipts.store",
	}
	col, ok := sortCols[filter.SortBy]
	if !ok {
		col = "receipts.date"
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}
	q = q.Order(col + " " + direction)

	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var rows []*dto.ReceiptSummary
	if err := q.Scan(&rows).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return rows, nil
}

// DistinctStoreNames implements repository.ReceiptRepository.
func (r *receiptRepository) DistinctStoreNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&Receipt{}).
		Distinct("store").Order("store").
		Pluck("store", &names).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return names, nil
}

// mapReceiptToDTO maps a GORM model to a read-optimized DTO, without items.
func mapReceiptToDTO(rec *Receipt) *dto.ReceiptRead {
	return &dto.ReceiptRead{
		ID:          rec.ID,
		Date:        rec.Date,
		Store:       rec.Store,
		Currency:    rec.Currency,
		TotalAmount: rec.TotalAmount,
		Notes:       rec.Notes,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}
