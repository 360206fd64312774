package unit_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhaefliger/grocery/pkg/unit"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestPricePerUnit(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		total    string
		want     string
	}{
		{"whole division", "2", "5.00", "2.50"},
		{"rounds half up", "6", "10.00", "1.67"},
		{"single unit", "1", "4.99", "4.99"},
		{"fractional quantity", "0.5", "3.00", "6.00"},
		{"zero price", "3", "0", "0.00"},
		{"exact half rounds up", "8", "0.20", "0.03"}, // 0.025 -> 0.03
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := unit.PricePerUnit(dec(tt.quantity), dec(tt.total))
			require.NoError(t, err)
			assert.True(t, dec(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestPricePerUnit_InvalidQuantity(t *testing.T) {
	for _, q := range []string{"0", "-1", "-0.001"} {
		_, err := unit.PricePerUnit(dec(q), dec("1.00"))
		assert.ErrorIs(t, err, unit.ErrInvalidQuantity, "quantity %s", q)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		quantity  string
		unit      unit.Unit
		total     string
		wantPrice string
		wantUnit  unit.Unit
	}{
		{"grams to kg", "500", unit.Gram, "3.00", "6.00", unit.Kilogram},
		{"kg stays kg", "0.5", unit.Kilogram, "3.00", "6.00", unit.Kilogram},
		{"ml to L", "250", unit.Milliliter, "1.00", "4.00", unit.Liter},
		{"L stays L", "1.5", unit.Liter, "3.00", "2.00", unit.Liter},
		{"count stays count", "1", unit.Count, "4.99", "4.99", unit.Count},
		{"count divides", "6", unit.Count, "10.00", "1.67", unit.Count},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, base, err := unit.Normalize(dec(tt.quantity), tt.unit, dec(tt.total))
			require.NoError(t, err)
			assert.Equal(t, tt.wantUnit, base)
			assert.True(t, dec(tt.wantPrice).Equal(price), "want %s, got %s", tt.wantPrice, price)
		})
	}
}

// Converting grams by hand before normalizing must agree with letting
// Normalize do the conversion, for price and base unit alike.
func TestNormalize_GramKilogramAgreement(t *testing.T) {
	quantities := []string{"1", "250", "500", "999", "1250"}
	for _, q := range quantities {
		total := dec("7.35")
		fromGrams, baseG, err := unit.Normalize(dec(q), unit.Gram, total)
		require.NoError(t, err)
		fromKg, baseKg, err := unit.Normalize(dec(q).Mul(dec("0.001")), unit.Kilogram, total)
		require.NoError(t, err)
		assert.Equal(t, unit.Kilogram, baseG)
		assert.Equal(t, unit.Kilogram, baseKg)
		assert.True(t, fromGrams.Equal(fromKg), "qty %s g: %s != %s", q, fromGrams, fromKg)
	}
}

func TestNormalize_MilliliterLiterAgreement(t *testing.T) {
	total := dec("2.50")
	fromMl, baseMl, err := unit.Normalize(dec("330"), unit.Milliliter, total)
	require.NoError(t, err)
	fromL, baseL, err := unit.Normalize(dec("0.330"), unit.Liter, total)
	require.NoError(t, err)
	assert.Equal(t, unit.Liter, baseMl)
	assert.Equal(t, unit.Liter, baseL)
	assert.True(t, fromMl.Equal(fromL))
}

// Normalize with Count must match PricePerUnit exactly.
func TestNormalize_CountMatchesPricePerUnit(t *testing.T) {
	cases := [][2]string{{"1", "4.99"}, {"3", "10.00"}, {"7", "0.99"}}
	for _, c := range cases {
		ppu, err := unit.PricePerUnit(dec(c[0]), dec(c[1]))
		require.NoError(t, err)
		norm, base, err := unit.Normalize(dec(c[0]), unit.Count, dec(c[1]))
		require.NoError(t, err)
		assert.Equal(t, unit.Count, base)
		assert.True(t, ppu.Equal(norm))
	}
}

func TestNormalize_InvalidQuantity(t *testing.T) {
	for _, u := range unit.All() {
		_, _, err := unit.Normalize(dec("0"), u, dec("1.00"))
		assert.ErrorIs(t, err, unit.ErrInvalidQuantity, "unit %s", u)
		_, _, err = unit.Normalize(dec("-2"), u, dec("1.00"))
		assert.ErrorIs(t, err, unit.ErrInvalidQuantity, "unit %s", u)
	}
}

func TestNormalize_UnrecognizedUnit(t *testing.T) {
	for _, u := range []unit.Unit{"oz", "lb", "KG", "", "liters"} {
		_, _, err := unit.Normalize(dec("1"), u, dec("1.00"))
		assert.ErrorIs(t, err, unit.ErrUnrecognizedUnit, "unit %q", u)
	}
}

func TestIsValid(t *testing.T) {
	for _, u := range unit.All() {
		assert.True(t, unit.IsValid(u))
	}
	assert.False(t, unit.IsValid("oz"))
	assert.False(t, unit.IsValid(""))
}
