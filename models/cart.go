package models

import "github.com/shopspring/decimal"

// CartLine is a catalog product plus a positive quantity. A cart holds at
// most one line per product id; a line whose quantity drops to zero or
// below is removed, never stored.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal returns price × quantity for this line.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
