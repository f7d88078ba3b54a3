package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product es dato maestro consumido por el núcleo vía lookup por FK.
type Product struct {
	ProductID   int64
	Name        string
	Description string
	Category    string
	FuelType    string
	Unit        string
	UnitPrice   decimal.Decimal
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
