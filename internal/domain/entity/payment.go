package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de pago: cash liquida una venta directamente, credit abona a un crédito.
const (
	PaymentTypeCash   = "cash"
	PaymentTypeCredit = "credit"
)

// PaymentStatusCompleted es el único estado que genera este núcleo.
const PaymentStatusCompleted = "completed"

// Payment representa un evento de liquidación, contra una venta (cash)
// o contra un crédito (credit). Inmutable una vez creado.
type Payment struct {
	PaymentID        int64
	UserID           *int64 // quién registró el pago
	SaleID           *int64
	CreditID         *int64
	PaymentTimestamp time.Time
	Amount           decimal.Decimal
	PaymentMethodID  int64
	Notes            string
	PaymentType      string
	Status           string
}
