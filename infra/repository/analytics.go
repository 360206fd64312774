package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/mhaefliger/grocery/pkg/dto"
	"github.com/mhaefliger/grocery/pkg/repository"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates the read-only analytics repository. Its
// queries aggregate committed data and never open a write transaction.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// CategorySpending implements repository.AnalyticsRepository. Items without
// a category are reported under "Uncategorized".
func (r *analyticsRepository) CategorySpending(ctx context.Context, filter dto.AnalyticsFilter) ([]dto.CategorySpendingRow, error) {
	q := r.db.WithContext(ctx).Table("receipts").
		Select(`COALESCE(categories.name, 'Uncategorized') AS category,
			ROUND(SUM(items.total_price), 2) AS total_spent,
			COUNT(items.id) AS item_count`).
		Joins("JOIN items ON items.receipt_id = receipts.id").
		Joins("LEFT JOIN categories ON categories.id = items.category_id").
		Where("receipts.currency = ?", filter.Currency).
		Group("COALESCE(categories.name, 'Uncategorized')").
		Order("total_spent DESC")
	q = applyDateRange(q, filter)

	var rows []dto.CategorySpendingRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return rows, nil
}

// MonthlySpending implements repository.AnalyticsRepository. Months are
// YYYY-MM buckets of the receipt date.
func (r *analyticsRepository) MonthlySpending(ctx context.Context, filter dto.AnalyticsFilter) ([]dto.MonthlySpendingRow, error) {
	q := r.db.WithContext(ctx).Table("receipts").
		Select(`to_char(receipts.date, 'YYYY-MM') AS month,
			COALESCE(categories.name, 'Uncategorized') AS category,
			ROUND(SUM(items.total_price), 2) AS total_spent`).
		Joins("JOIN items ON items.receipt_id = receipts.id").
		Joins("LEFT JOIN categories ON categories.id = items.category_id").
		Where("receipts.currency = ?", filter.Currency).
		Group("to_char(receipts.date, 'YYYY-MM'), COALESCE(categories.name, 'Uncategorized')").
		Order("month")
	q = applyDateRange(q, filter)

	var rows []dto.MonthlySpendingRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return rows, nil
}

// StoreComparison implements repository.AnalyticsRepository. Only items with
// a normalized price participate, so per-kg and per-piece prices never mix
// silently; comparisons only make sense when the caller also narrows down the
// item names or category.
func (r *analyticsRepository) StoreComparison(ctx context.Context, filter dto.AnalyticsFilter) ([]dto.StoreComparisonRow, error) {
	q := r.db.WithContext(ctx).Table("receipts").
		Select(`receipts.store,
			ROUND(AVG(items.normalized_price), 2) AS avg_normalized_price,
			MIN(items.normalized_price) AS min_normalized_price,
			MAX(items.normalized_price) AS max_normalized_price,
			COUNT(items.id) AS purchase_count`).
		Joins("JOIN items ON items.receipt_id = receipts.id").
		Where("items.normalized_price IS NOT NULL").
		Where("receipts.currency = ?", filter.Currency).
		Group("receipts.store").
		Order("receipts.store")

	if len(filter.ItemNames) > 0 {
		q = q.Where("LOWER(items.name) IN ?", lowerAll(filter.ItemNames))
	}
	if filter.CategoryID != nil {
		q = q.Where("items.category_id = ?", *filter.CategoryID)
	}

	var rows []dto.StoreComparisonRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return rows, nil
}

// PriceTrends implements repository.AnalyticsRepository.
func (r *analyticsRepository) PriceTrends(ctx context.Context, filter dto.AnalyticsFilter) ([]dto.PriceTrendRow, error) {
	q := r.db.WithContext(ctx).Table("receipts").
		Select(`receipts.date, items.name AS item_name, receipts.store,
			items.normalized_price, items.normalized_unit`).
		Joins("JOIN items ON items.receipt_id = receipts.id").
		Where("items.normalized_price IS NOT NULL").
		Where("receipts.currency = ?", filter.Currency).
		Order("receipts.date")

	if len(filter.ItemNames) > 0 {
		q = q.Where("LOWER(items.name) IN ?", lowerAll(filter.ItemNames))
	}
	q = applyDateRange(q, filter)

	var rows []dto.PriceTrendRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return rows, nil
}

// ItemsExport implements repository.AnalyticsRepository: one denormalized row
// per item with the receipt fields repeated, newest receipts first.
func (r *analyticsRepository) ItemsExport(ctx context.Context, filter dto.ReceiptFilter) ([]dto.ExportRow, error) {
	q := r.db.WithContext(ctx).Table("receipts").
		Select(`receipts.date, receipts.store, receipts.currency,
			items.name AS item_name, items.brand, categories.name AS category,
			items.quantity, items.unit, items.price_per_unit, items.total_price,
			items.normalized_price, items.normalized_unit, items.notes`).
		Joins("JOIN items ON items.receipt_id = receipts.id").
		Joins("LEFT JOIN categories ON categories.id = items.category_id").
		Order("receipts.date DESC, items.name")

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
		q = q.Where("LOWER(items.name) LIKE ?", "%"+strings.ToLower(filter.ItemSearch)+"%")
	}

	var rows []dto.ExportRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return rows, nil
}

func applyDateRange(q *gorm.DB, filter dto.AnalyticsFilter) *gorm.DB {
	if filter.DateFrom != nil {
		q = q.Where("receipts.date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		q = q.Where("receipts.date <= ?", *filter.DateTo)
	}
	return q
}

func lowerAll(names []string) []string {
	lowered := make([]string, len(names))
	for i, n := range names {
		lowered[i] = strings.ToLower(n)
	}
	return lowered
}
