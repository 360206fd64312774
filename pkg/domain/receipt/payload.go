// Package receipt defines the validated submission payloads for saving and
// updating receipts. Validation happens once, at the construction boundary:
// a payload that passed Validate carries trimmed strings, a defaulted
// currency, and satisfies every schema rule, so downstream code never
// re-checks.
package receipt

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mhaefliger/grocery/pkg/currency"
	"github.com/mhaefliger/grocery/pkg/domain"
	"github.com/mhaefliger/grocery/pkg/unit"
)

// ItemPayload is one line item of a receipt submission. CategoryID selects an
// existing category; NewCategoryName requests lazy creation of one instead.
// Setting both is allowed — the new name wins, matching the entry form.
type ItemPayload struct {
	Name            string
	Brand           string
	CategoryID      *uint
	NewCategoryName string
	Quantity        decimal.Decimal
	Unit            unit.Unit
	TotalPrice      decimal.Decimal
	OriginalPrice   *decimal.Decimal
	Notes           string
}

// Payload is a full receipt submission: header plus at least one item.
type Payload struct {
	Date     time.Time
	Store    string
	Currency currency.Code
	Notes    string
	Items    []ItemPayload
}

// Validate normalizes the payload in place and checks every schema rule.
// All violations wrap domain.ErrValidation.
func (p *Payload) Validate() error {
	p.Store = strings.TrimSpace(p.Store)
	p.Notes = strings.TrimSpace(p.Notes)

	if p.Store == "" {
		return fmt.Errorf("%w: store name cannot be empty", domain.ErrValidation)
	}
	if dateOnly(p.Date).After(dateOnly(time.Now())) {
		return fmt.Errorf("%w: receipt date cannot be in the future", domain.ErrValidation)
	}
	if p.Currency == "" {
		p.Currency = currency.Default
	}
	if !currency.IsSupported(p.Currency) {
		return fmt.Errorf("%w: currency must be one of %v, got %q",
			domain.ErrValidation, currency.ListSupported(), p.Currency)
	}
	if len(p.Items) == 0 {
		return fmt.Errorf("%w: receipt must have at least one item", domain.ErrValidation)
	}
	for i := range p.Items {
		if err := p.Items[i].validate(); err != nil {
			return fmt.Errorf("item %d: %w", i+1, err)
		}
	}
	return nil
}

// TotalAmount is the sum of the item total prices. Exact decimal addition,
// so the stored receipt total equals the submission exactly.
func (p *Payload) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for i := range p.Items {
		total = total.Add(p.Items[i].TotalPrice)
	}
	return total
}

func (ip *ItemPayload) validate() error {
	ip.Name = strings.TrimSpace(ip.Name)
	ip.Brand = strings.TrimSpace(ip.Brand)
	ip.NewCategoryName = strings.TrimSpace(ip.NewCategoryName)
	ip.Notes = strings.TrimSpace(ip.Notes)

	if ip.Name == "" {
		return fmt.Errorf("%w: item name cannot be empty", domain.ErrValidation)
	}
	if !ip.Quantity.IsPositive() {
		return fmt.Errorf("%w: quantity must be positive, got %s", domain.ErrValidation, ip.Quantity)
	}
	if !unit.IsValid(ip.Unit) {
		return fmt.Errorf("%w: unit must be one of %v, got %q", domain.ErrValidation, unit.All(), ip.Unit)
	}
	if ip.TotalPrice.IsNegative() {
		return fmt.Errorf("%w: total price cannot be negative, got %s", domain.ErrValidation, ip.TotalPrice)
	}
	if ip.OriginalPrice != nil && ip.OriginalPrice.LessThan(ip.TotalPrice) {
		return fmt.Errorf("%w: original price %s cannot be below total price %s",
			domain.ErrValidation, ip.OriginalPrice, ip.TotalPrice)
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
