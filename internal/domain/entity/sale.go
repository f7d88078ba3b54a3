package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta. Una venta solo transiciona completed -> cancelled.
const (
	SaleStatusCompleted = "completed"
	SaleStatusCancelled = "cancelled"
)

// Sale representa una transacción de despacho completada (o anulada).
// Invariante: FinalAmount = TotalAmount - DiscountAmount, siempre > 0.
type Sale struct {
	SaleID          int64
	ClientID        *int64
	UserID          int64 // cajero que registra
	EmployeeID      *int64
	NozzleID        int64
	SaleTimestamp   time.Time
	TotalAmount     decimal.Decimal
	DiscountAmount  decimal.Decimal
	FinalAmount     decimal.Decimal
	PaymentMethodID int64
	Status          string
	Shift           string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
