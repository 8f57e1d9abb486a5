package domain

// Currency is one of the two currencies the business keeps books in.
type Currency string

const (
	USD Currency = "USD"
	VND Currency = "VND"
)

// IsValid reports whether c is a supported currency.
func (c Currency) IsValid() bool {
	return c == USD || c == VND
}

// Currencies lists supported currencies in reporting order.
var Currencies = []Currency{USD, VND}
