// Package dto defines the data transfer objects exchanged between services
// and repositories. Write DTOs carry exactly the fields a repository persists;
// read DTOs are flattened, presentation-friendly projections.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryCreate carries the fields for a new category row.
type CategoryCreate struct {
	Name     string
	ParentID *uint
	Icon     *string
	Color    *string
}

// CategoryRead is the read-side projection of a category.
type CategoryRead struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	ParentID  *uint     `json:"parent_id,omitempty"`
	Icon      *string   `json:"icon,omitempty"`
	Color     *string   `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// StoreCreate carries the fields for a new store row.
type StoreCreate struct {
	Name     string
	Location *string
}

// StoreRead is the read-side projection of a store.
type StoreRead struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Location  *string   `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ItemCreate carries one fully computed line item. PricePerUnit,
// NormalizedPrice and NormalizedUnit are always derived by the caller from
// quantity, unit and total price; they are never accepted as input.
type ItemCreate struct {
	ReceiptID       uint
	Name            string
	Brand           *string
	CategoryID      *uint
	Quantity        decimal.Decimal
	Unit            string
	PricePerUnit    decimal.Decimal
	TotalPrice      decimal.Decimal
	NormalizedPrice decimal.Decimal
	NormalizedUnit  string
	OriginalPrice   *decimal.Decimal
	Notes           *string
}

// ItemRead is the read-side projection of a line item with its category name
// resolved.
type ItemRead struct {
	ID              uint             `json:"id"`
	ReceiptID       uint             `json:"receipt_id"`
	Name            string           `json:"name"`
	Brand           *string          `json:"brand,omitempty"`
	CategoryID      *uint            `json:"category_id,omitempty"`
	CategoryName    *string          `json:"category,omitempty"`
	Quantity        decimal.Decimal  `json:"quantity"`
	Unit            string           `json:"unit"`
	PricePerUnit    decimal.Decimal  `json:"price_per_unit"`
	TotalPrice      decimal.Decimal  `json:"total_price"`
	NormalizedPrice decimal.Decimal  `json:"normalized_price"`
	NormalizedUnit  string           `json:"normalized_unit"`
	OriginalPrice   *decimal.Decimal `json:"original_price,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}

// ReceiptCreate carries the receipt header for creation. TotalAmount is the
// sum of the item total prices, computed by the caller.
type ReceiptCreate struct {
	Date        time.Time
	Store       string
	Currency    string
	TotalAmount decimal.Decimal
	Notes       *string
}

// ReceiptUpdate overwrites the receipt header; updates are always full
// replacements, so all fields are present.
type ReceiptUpdate struct {
	Date        time.Time
	Store       string
	Currency    string
	TotalAmount decimal.Decimal
	Notes       *string
}

// ReceiptRead is the read-side projection of a receipt with its items.
type ReceiptRead struct {
	ID          uint            `json:"id"`
	Date        time.Time       `json:"date"`
	Store       string          `json:"store"`
	Currency    string          `json:"currency"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Notes       *string         `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Items       []ItemRead      `json:"items,omitempty"`
}

// ReceiptSummary is one row of the receipt history list.
type ReceiptSummary struct {
	ReceiptID   uint            `json:"receipt_id"`
	Date        time.Time       `json:"date"`
	Store       string          `json:"store"`
	Currency    string          `json:"currency"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	ItemCount   int64           `json:"item_count"`
	Notes       *string         `json:"notes,omitempty"`
}

// Receipt list sort columns.
const (
	SortByDate  = "date"
	SortByTotal = "total"
	SortByStore = "store"
)

// ReceiptFilter narrows and orders the receipt history list. Zero values mean
// "no filter"; Limit <= 0 means no pagination.
type ReceiptFilter struct {
	DateFrom   *time.Time
	DateTo     *time.Time
	Stores     []string
	ItemSearch string
	SortBy     string
	SortDesc   bool
	Limit      int
	Offset     int
}
