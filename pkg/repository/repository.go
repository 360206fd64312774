// Package repository defines the data access interfaces the services depend
// on. Concrete implementations live in infra/repository; tests substitute
// in-memory fakes.
package repository

import (
	"context"

	"github.com/mhaefliger/grocery/pkg/dto"
)

// ReceiptRepository defines data access for receipt headers.
type ReceiptRepository interface {
	Create(ctx context.Context, create dto.ReceiptCreate) (*dto.ReceiptRead, error)
	// Get returns the receipt with its items, or domain.ErrNotFound.
	Get(ctx context.Context, id uint) (*dto.ReceiptRead, error)
	Update(ctx context.Context, id uint, update dto.ReceiptUpdate) error
	// Delete removes the receipt; its items go with it via the FK cascade.
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter dto.ReceiptFilter) ([]*dto.ReceiptSummary, error)
	// DistinctStoreNames lists store names that actually appear on receipts.
	DistinctStoreNames(ctx context.Context) ([]string, error)
}

// ItemRepository defines data access for receipt line items.
type ItemRepository interface {
	Create(ctx context.Context, create dto.ItemCreate) (*dto.ItemRead, error)
	ListByReceipt(ctx context.Context, receiptID uint) ([]*dto.ItemRead, error)
	// DeleteByReceipt removes every item of a receipt. Used by the
	// full-replace update.
	DeleteByReceipt(ctx context.Context, receiptID uint) error
	DistinctNames(ctx context.Context) ([]string, error)
}

// CategoryRepository defines data access for categories. Categories are
// created lazily and never deleted by this subsystem.
type CategoryRepository interface {
	Create(ctx context.Context, create dto.CategoryCreate) (*dto.CategoryRead, error)
	Get(ctx context.Context, id uint) (*dto.CategoryRead, error)
	// GetByName returns domain.ErrNotFound when no category has that name.
	GetByName(ctx context.Context, name string) (*dto.CategoryRead, error)
	List(ctx context.Context, topLevelOnly bool) ([]*dto.CategoryRead, error)
}

// StoreRepository defines data access for stores. Stores are created lazily
// and never deleted by this subsystem.
type StoreRepository interface {
	Create(ctx context.Context, create dto.StoreCreate) (*dto.StoreRead, error)
	// GetByName returns domain.ErrNotFound when no store has that name.
	GetByName(ctx context.Context, name string) (*dto.StoreRead, error)
	List(ctx context.Context) ([]*dto.StoreRead, error)
}

// AnalyticsRepository defines the read-only aggregations behind the
// analytics dashboard and the item export.
type AnalyticsRepository interface {
	CategorySpending(ctx context.Context, filter dto.AnalyticsFilter) ([]dto.CategorySpendingRow, error)
	MonthlySpending(ctx context.Context, filter dto.AnalyticsFilter) ([]dto.MonthlySpendingRow, error)
	StoreComparison(ctx context.Context, filter dto.AnalyticsFilter) ([]dto.StoreComparisonRow, error)
	PriceTrends(ctx context.Context, filter dto.AnalyticsFilter) ([]dto.PriceTrendRow, error)
	ItemsExport(ctx context.Context, filter dto.ReceiptFilter) ([]dto.ExportRow, error)
}

// UnitOfWork provides a transaction boundary and repository access in one
// abstraction: every repository obtained inside Do uses the same DB session,
// so a save either commits whole or rolls back whole.
type UnitOfWork interface {
	// Do runs fn inside one transaction. Any error from fn rolls the
	// transaction back and is returned unchanged.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error
	ReceiptRepository() (ReceiptRepository, error)
	ItemRepository() (ItemRepository, error)
	CategoryRepository() (CategoryRepository, error)
	StoreRepository() (StoreRepository, error)
}
