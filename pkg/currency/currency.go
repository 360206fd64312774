// Package currency holds the currency codes a receipt may be priced in and
// their display metadata. The tracker is deliberately limited to the two
// currencies groceries are actually bought in around here.
package currency

// Code is an ISO 4217 currency code.
type Code string

const (
	// EUR is the euro, the default receipt currency.
	EUR Code = "EUR"
	// CHF is the Swiss franc.
	CHF Code = "CHF"

	// Default is the currency assumed when a receipt does not name one.
	Default = EUR
)

// Meta holds display metadata for a currency.
type Meta struct {
	Decimals int
	Symbol   string
}

var supported = map[Code]Meta{
	EUR: {Decimals: 2, Symbol: "€"},
	CHF: {Decimals: 2, Symbol: "CHF"},
}

// IsSupported reports whether code is a currency receipts may use.
func IsSupported(code Code) bool {
	_, ok := supported[code]
	return ok
}

// Get returns the metadata for code. Unknown codes get two decimals and the
// code itself as symbol.
func Get(code Code) Meta {
	if meta, ok := supported[code]; ok {
		return meta
	}
	return Meta{Decimals: 2, Symbol: string(code)}
}

// ListSupported returns all supported currency codes in a stable order.
func ListSupported() []Code {
	return []Code{EUR, CHF}
}

func (c Code) String() string {
	return string(c)
}
