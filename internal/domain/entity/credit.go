package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un crédito.
const (
	CreditStatusPending = "pending"
	CreditStatusPaid    = "paid"
)

// Credit representa una deuda pendiente ligada 1:1 a una venta y a un cliente.
// Invariante: 0 <= AmountPaid <= CreditAmount; Status pasa a paid solo cuando
// AmountPaid == CreditAmount.
type Credit struct {
	CreditID     int64
	ClientID     int64
	SaleID       int64
	CreditAmount decimal.Decimal // deuda original (bruto)
	AmountPaid   decimal.Decimal // acumulado
	DueDate      time.Time
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Balance devuelve el saldo pendiente del crédito.
func (c *Credit) Balance() decimal.Decimal {
	return c.CreditAmount.Sub(c.AmountPaid)
}
