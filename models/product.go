package models

import "github.com/shopspring/decimal"

// Product mirrors the catalog source's response shape. Products are
// supplied by the external catalog API and never mutated locally.
type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
}
