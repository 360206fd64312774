package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsFilter narrows analytics aggregations. Currency is required so
// sums never mix EUR and CHF; the rest are optional.
type AnalyticsFilter struct {
	Currency   string
	DateFrom   *time.Time
	DateTo     *time.Time
	ItemNames  []string
	CategoryID *uint
}

// CategorySpendingRow is total spending for one category; items without a
// category are reported under "Uncategorized".
type CategorySpendingRow struct {
	Category   string          `json:"category"`
	TotalSpent decimal.Decimal `json:"total_spent"`
	ItemCount  int64           `json:"item_count"`
}

// MonthlySpendingRow is spending for one category in one YYYY-MM month.
type MonthlySpendingRow struct {
	Month      string          `json:"month"`
	Category   string          `json:"category"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// StoreComparisonRow aggregates normalized prices per store.
type StoreComparisonRow struct {
	Store              string          `json:"store"`
	AvgNormalizedPrice decimal.Decimal `json:"avg_normalized_price"`
	MinNormalizedPrice decimal.Decimal `json:"min_normalized_price"`
	MaxNormalizedPrice decimal.Decimal `json:"max_normalized_price"`
	PurchaseCount      int64           `json:"purchase_count"`
}

// PriceTrendRow is one observation of an item's normalized price over time.
type PriceTrendRow struct {
	Date            time.Time       `json:"date"`
	ItemName        string          `json:"item_name"`
	Store           string          `json:"store"`
	NormalizedPrice decimal.Decimal `json:"normalized_price"`
	NormalizedUnit  string          `json:"normalized_unit"`
}

// ExportRow is one denormalized line of the item export: one row per item
// with the receipt fields repeated.
type ExportRow struct {
	Date            time.Time
	Store           string
	Currency        string
	ItemName        string
	Brand           *string
	Category        *string
	Quantity        decimal.Decimal
	Unit            string
	PricePerUnit    decimal.Decimal
	TotalPrice      decimal.Decimal
	NormalizedPrice decimal.Decimal
	NormalizedUnit  string
	Notes           *string
}
