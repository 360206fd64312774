package receipt

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mhaefliger/grocery/pkg/currency"
	receiptdomain "github.com/mhaefliger/grocery/pkg/domain/receipt"
	"github.com/mhaefliger/grocery/pkg/unit"
)

// ItemRequest is one line item of a receipt request body.
type ItemRequest struct {
	Name            string           `json:"name" validate:"required"`
	Brand           string           `json:"brand"`
	CategoryID      *uint            `json:"category_id"`
	NewCategoryName string           `json:"new_category_name"`
	Quantity        decimal.Decimal  `json:"quantity"`
	Unit            string           `json:"unit" validate:"required"`
	TotalPrice      decimal.Decimal  `json:"total_price"`
	OriginalPrice   *decimal.Decimal `json:"original_price"`
	Notes           string           `json:"notes"`
}

// Request is the body of receipt create and update calls.
type Request struct {
	Date     string        `json:"date" validate:"required,datetime=2006-01-02"`
	Store    string        `json:"store" validate:"required"`
	Currency string        `json:"currency" validate:"omitempty,len=3,uppercase"`
	Notes    string        `json:"notes"`
	Items    []ItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ToPayload converts the request into the domain payload. Semantic checks
// beyond shape happen in the payload's own Validate.
func (r Request) ToPayload() (receiptdomain.Payload, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return receiptdomain.Payload{}, fmt.Errorf("date: expected YYYY-MM-DD: %w", err)
	}
	items := make([]receiptdomain.ItemPayload, len(r.Items))
	for i, it := range r.Items {
		items[i] = receiptdomain.ItemPayload{
			Name:            it.Name,
			Brand:           it.Brand,
			CategoryID:      it.CategoryID,
			NewCategoryName: it.NewCategoryName,
			Quantity:        it.Quantity,
			Unit:            unit.Unit(it.Unit),
			TotalPrice:      it.TotalPrice,
			OriginalPrice:   it.OriginalPrice,
			Notes:           it.Notes,
		}
	}
	return receiptdomain.Payload{
		Date:     date,
		Store:    r.Store,
		Currency: currency.Code(r.Currency),
		Notes:    r.Notes,
		Items:    items,
	}, nil
}
