package receipt_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhaefliger/grocery/pkg/currency"
	"github.com/mhaefliger/grocery/pkg/domain"
	"github.com/mhaefliger/grocery/pkg/domain/receipt"
	"github.com/mhaefliger/grocery/pkg/unit"
)

func validPayload() receipt.Payload {
	return receipt.Payload{
		Date:     time.Now().AddDate(0, 0, -1),
		Store:    "Migros",
		Currency: currency.CHF,
		Items: []receipt.ItemPayload{
			{
				Name:       "Milk",
				Quantity:   decimal.NewFromInt(1),
				Unit:       unit.Liter,
				TotalPrice: decimal.RequireFromString("1.65"),
			},
		},
	}
}

func TestPayload_Validate_OK(t *testing.T) {
	p := validPayload()
	require.NoError(t, p.Validate())
}

func TestPayload_Validate_TrimsStrings(t *testing.T) {
	p := validPayload()
	p.Store = "  Migros  "
	p.Notes = " weekly shop "
	p.Items[0].Name = "  Milk "
	p.Items[0].Brand = " M-Budget  "

	require.NoError(t, p.Validate())
	assert.Equal(t, "Migros", p.Store)
	assert.Equal(t, "weekly shop", p.Notes)
	assert.Equal(t, "Milk", p.Items[0].Name)
	assert.Equal(t, "M-Budget", p.Items[0].Brand)
}

func TestPayload_Validate_DefaultsCurrency(t *testing.T) {
	p := validPayload()
	p.Currency = ""
	require.NoError(t, p.Validate())
	assert.Equal(t, currency.EUR, p.Currency)
}

func TestPayload_Validate_TodayIsAllowed(t *testing.T) {
	p := validPayload()
	p.Date = time.Now()
	assert.NoError(t, p.Validate())
}

func TestPayload_Validate_Rejections(t *testing.T) {
	orig := decimal.RequireFromString("0.50")

	tests := []struct {
		name   string
		mutate func(*receipt.Payload)
	}{
		{"empty store", func(p *receipt.Payload) { p.Store = "   " }},
		{"future date", func(p *receipt.Payload) { p.Date = time.Now().AddDate(0, 0, 1) }},
		{"unknown currency", func(p *receipt.Payload) { p.Currency = "USD" }},
		{"no items", func(p *receipt.Payload) { p.Items = nil }},
		{"empty item name", func(p *receipt.Payload) { p.Items[0].Name = " " }},
		{"zero quantity", func(p *receipt.Payload) { p.Items[0].Quantity = decimal.Zero }},
		{"negative quantity", func(p *receipt.Payload) { p.Items[0].Quantity = decimal.NewFromInt(-1) }},
		{"bad unit", func(p *receipt.Payload) { p.Items[0].Unit = "oz" }},
		{"negative price", func(p *receipt.Payload) { p.Items[0].TotalPrice = decimal.NewFromInt(-2) }},
		{"original below total", func(p *receipt.Payload) { p.Items[0].OriginalPrice = &orig }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			tt.mutate(&p)
			err := p.Validate()
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestPayload_Validate_OriginalPriceAtOrAboveTotal(t *testing.T) {
	p := validPayload()
	equal := p.Items[0].TotalPrice
	p.Items[0].OriginalPrice = &equal
	assert.NoError(t, p.Validate())

	p = validPayload()
	higher := decimal.RequireFromString("2.20")
	p.Items[0].OriginalPrice = &higher
	assert.NoError(t, p.Validate())
}

func TestPayload_TotalAmount(t *testing.T) {
	p := validPayload()
	p.Items = append(p.Items, receipt.ItemPayload{
		Name:       "Bread",
		Quantity:   decimal.NewFromInt(2),
		Unit:       unit.Count,
		TotalPrice: decimal.RequireFromString("3.10"),
	})
	assert.True(t, decimal.RequireFromString("4.75").Equal(p.TotalAmount()))
}
