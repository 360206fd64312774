// Package unit converts purchased quantities into comparable per-base-unit
// prices. Weights normalize to kg, volumes to L, and counted goods stay as-is,
// so a 500 g pack and a 1.2 kg pack of the same product can be compared on
// price directly.
//
// All arithmetic is exact fixed-point via shopspring/decimal; results carry
// two decimal places, rounded half-up. The package is stateless and safe for
// concurrent use.
package unit

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Unit is a measurement unit a quantity may be purchased in.
type Unit string

const (
	// Kilogram is the base unit for weights.
	Kilogram Unit = "kg"
	// Gram normalizes to Kilogram.
	Gram Unit = "g"
	// Liter is the base unit for volumes.
	Liter Unit = "L"
	// Milliliter normalizes to Liter.
	Milliliter Unit = "ml"
	// Count is for goods sold by piece; it is its own base unit.
	Count Unit = "units"
)

var (
	// ErrInvalidQuantity is returned when a quantity is zero or negative.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrUnrecognizedUnit is returned for units outside kg, g, L, ml, units.
	ErrUnrecognizedUnit = errors.New("unrecognized unit")
)

// conversions maps a unit to its factor into the base unit and the base unit
// itself. Count is handled separately because it needs no conversion.
var conversions = map[Unit]struct {
	factor decimal.Decimal
	base   Unit
}{
	Kilogram:   {factor: decimal.NewFromInt(1), base: Kilogram},
	Gram:       {factor: decimal.NewFromFloat(0.001), base: Kilogram},
	Liter:      {factor: decimal.NewFromInt(1), base: Liter},
	Milliliter: {factor: decimal.NewFromFloat(0.001), base: Liter},
}

// IsValid reports whether u is one of the recognized units.
func IsValid(u Unit) bool {
	if u == Count {
		return true
	}
	_, ok := conversions[u]
	return ok
}

// All returns the recognized units in display order.
func All() []Unit {
	return []Unit{Kilogram, Gram, Liter, Milliliter, Count}
}

func (u Unit) String() string {
	return string(u)
}

// PricePerUnit computes totalPrice / quantity rounded to two decimal places,
// half-up. It has no unit awareness. Returns ErrInvalidQuantity for
// quantity <= 0.
func PricePerUnit(quantity, totalPrice decimal.Decimal) (decimal.Decimal, error) {
	if !quantity.IsPositive() {
		return decimal.Decimal{}, ErrInvalidQuantity
	}
	return totalPrice.DivRound(quantity, 2), nil
}

// Normalize converts a purchase into a price per base unit. Weights are
// normalized to kg, volumes to L, counted goods behave like PricePerUnit.
// Returns ErrInvalidQuantity for quantity <= 0 and ErrUnrecognizedUnit for
// units outside the fixed set.
func Normalize(quantity decimal.Decimal, u Unit, totalPrice decimal.Decimal) (decimal.Decimal, Unit, error) {
	if !quantity.IsPositive() {
		return decimal.Decimal{}, "", ErrInvalidQuantity
	}

	if u == Count {
		price := totalPrice.DivRound(quantity, 2)
		return price, Count, nil
	}

	conv, ok := conversions[u]
	if !ok {
		return decimal.Decimal{}, "", ErrUnrecognizedUnit
	}

	baseQuantity := quantity.Mul(conv.factor)
	price := totalPrice.DivRound(baseQuantity, 2)
	return price, conv.base, nil
}
