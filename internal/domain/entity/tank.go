package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tank representa un reservorio físico de combustible.
// Invariante: 0 <= CurrentStock <= TotalCapacity. Solo el libro de
// movimientos de stock muta CurrentStock.
type Tank struct {
	TankID        int64
	TankName      string // único
	ProductID     int64
	TotalCapacity decimal.Decimal // 3 decimales
	CurrentStock  decimal.Decimal // 3 decimales
	Location      string
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
