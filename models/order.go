package models

import "github.com/shopspring/decimal"

type PaymentMethod string

const (
	PaymentCOD  PaymentMethod = "COD"
	PaymentCard PaymentMethod = "CARD"
	PaymentUPI  PaymentMethod = "UPI"
)

// Valid reports whether m is one of the accepted payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCOD, PaymentCard, PaymentUPI:
		return true
	}
	return false
}

// Order is an immutable snapshot of a completed checkout, appended to the
// owning user's order log and never modified afterwards.
type Order struct {
	OrderID  string          `json:"orderId"`
	Date     string          `json:"date"`
	FullName string          `json:"fullName"`
	Address  string          `json:"address"`
	Phone    string          `json:"phone"`
	Payment  PaymentMethod   `json:"payment"`
	Items    []CartLine      `json:"items"`
	Total    decimal.Decimal `json:"total"`
}
