package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is the GORM model for the receipts table.
type Receipt struct {
	ID          uint             `gorm:"primaryKey"`
	Date        time.Time        `gorm:"type:date;not null;index"`
	Store       string           `gorm:"size:255;not null;index"`
	Currency    string           `gorm:"type:varchar(3);not null;default:'EUR'"`
	TotalAmount decimal.Decimal  `gorm:"type:numeric(10,2);not null;check:total_amount >= 0"`
	Notes       *string          `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Items       []Item `gorm:"constraint:OnDelete:CASCADE"`
}

// Item is the GORM model for the items table. The derived price columns are
// always written by the service layer, never taken from input.
type Item struct {
	ID              uint             `gorm:"primaryKey"`
	ReceiptID       uint             `gorm:"not null;index"`
	Name            string           `gorm:"size:255;not null;index"`
	Brand           *string          `gorm:"size:255"`
	CategoryID      *uint            `gorm:"index"`
	Quantity        decimal.Decimal  `gorm:"type:numeric(10,3);not null;check:quantity > 0"`
	Unit            string           `gorm:"size:20;not null"`
	PricePerUnit    decimal.Decimal  `gorm:"type:numeric(10,2);not null"`
	TotalPrice      decimal.Decimal  `gorm:"type:numeric(10,2);not null;check:total_price >= 0"`
	NormalizedPrice decimal.Decimal  `gorm:"type:numeric(10,2);not null"`
	NormalizedUnit  string           `gorm:"size:10;not null"`
	OriginalPrice   *decimal.Decimal `gorm:"type:numeric(10,2)"`
	Notes           *string          `gorm:"type:text"`
	CreatedAt       time.Time

	Category *Category
}

// Category is the GORM model for the categories table. ParentID forms an
// optional tree; the name is globally unique.
type Category struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"size:255;uniqueIndex;not null"`
	ParentID  *uint   `gorm:"index"`
	Icon      *string `gorm:"size:50"`
	Color     *string `gorm:"size:7"`
	CreatedAt time.Time

	Parent   *Category  `gorm:"foreignKey:ParentID"`
	Children []Category `gorm:"foreignKey:ParentID"`
}

// Store is the GORM model for the stores table. The name is globally unique.
type Store struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"size:255;uniqueIndex;not null"`
	Location  *string `gorm:"size:255"`
	CreatedAt time.Time
}
