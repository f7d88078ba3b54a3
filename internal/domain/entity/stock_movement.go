package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock. Los ajustes se comportan como entrada o
// salida; las correcciones se registran como asientos de ajuste compensatorios.
const (
	MovementTypeEntrada       = "Entrada"
	MovementTypeSalida        = "Salida"
	MovementTypeAjusteEntrada = "AjusteEntrada"
	MovementTypeAjusteSalida  = "AjusteSalida"
)

// IsInboundMovement indica si el tipo suma stock al tanque.
func IsInboundMovement(movementType string) bool {
	return movementType == MovementTypeEntrada || movementType == MovementTypeAjusteEntrada
}

// IsOutboundMovement indica si el tipo resta stock del tanque.
func IsOutboundMovement(movementType string) bool {
	return movementType == MovementTypeSalida || movementType == MovementTypeAjusteSalida
}

// StockMovement es un asiento append-only del libro de inventario de un
// tanque. Nunca se actualiza ni se borra después de creado.
type StockMovement struct {
	StockMovementID   int64
	ProductID         int64
	TankID            int64
	UserID            int64
	MovementTimestamp time.Time
	MovementType      string
	Quantity          decimal.Decimal // 3 decimales, >= 0
	SaleDetailID      *int64
	DeliveryDetailID  *int64
	Description       string
}
