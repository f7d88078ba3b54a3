package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/grifosol/grifo-api/internal/domain/entity"
)

// CreateStockMovementRequest body para POST /api/stock-movements.
// MovementTimestamp es opcional (RFC 3339); vacío = ahora.
type CreateStockMovementRequest struct {
	ProductID         int64           `json:"product_id"`
	TankID            int64           `json:"tank_id"`
	UserID            int64           `json:"user_id"`
	MovementTimestamp string          `json:"movement_timestamp,omitempty"`
	MovementType      string          `json:"movement_type"`
	Quantity          decimal.Decimal `json:"quantity"`
	SaleDetailID      *int64          `json:"sale_detail_id,omitempty"`
	DeliveryDetailID  *int64          `json:"delivery_detail_id,omitempty"`
	Description       string          `json:"description,omitempty"`
}

// StockMovementResponse representación JSON de un movimiento.
type StockMovementResponse struct {
	StockMovementID   int64           `json:"stock_movement_id"`
	ProductID         int64           `json:"product_id"`
	TankID            int64           `json:"tank_id"`
	UserID            int64           `json:"user_id"`
	MovementTimestamp time.Time       `json:"movement_timestamp"`
	MovementType      string          `json:"movement_type"`
	Quantity          decimal.Decimal `json:"quantity"`
	SaleDetailID      *int64          `json:"sale_detail_id,omitempty"`
	DeliveryDetailID  *int64          `json:"delivery_detail_id,omitempty"`
	Description       string          `json:"description,omitempty"`
}

// FromStockMovement mapea la entidad a su respuesta JSON.
func FromStockMovement(m *entity.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		StockMovementID:   m.StockMovementID,
		ProductID:         m.ProductID,
		TankID:            m.TankID,
		UserID:            m.UserID,
		MovementTimestamp: m.MovementTimestamp,
		MovementType:      m.MovementType,
		Quantity:          m.Quantity,
		SaleDetailID:      m.SaleDetailID,
		DeliveryDetailID:  m.DeliveryDetailID,
		Description:       m.Description,
	}
}

// FromStockMovements mapea un listado completo.
func FromStockMovements(movements []*entity.StockMovement) []StockMovementResponse {
	out := make([]StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, FromStockMovement(m))
	}
	return out
}

// TankResponse representación JSON de un tanque con su stock vigente.
type TankResponse struct {
	TankID        int64           `json:"tank_id"`
	TankName      string          `json:"tank_name"`
	ProductID     int64           `json:"product_id"`
	TotalCapacity decimal.Decimal `json:"total_capacity"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	Location      string          `json:"location,omitempty"`
	Description   string          `json:"description,omitempty"`
}

// FromTank mapea la entidad a su respuesta JSON.
func FromTank(t *entity.Tank) TankResponse {
	return TankResponse{
		TankID:        t.TankID,
		TankName:      t.TankName,
		ProductID:     t.ProductID,
		TotalCapacity: t.TotalCapacity,
		CurrentStock:  t.CurrentStock,
		Location:      t.Location,
		Description:   t.Description,
	}
}
