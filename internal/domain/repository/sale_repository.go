package repository

import (
	"time"

	"github.com/grifosol/grifo-api/internal/domain/entity"
)

// SaleFilter filtros opcionales para listados e historiales de ventas.
type SaleFilter struct {
	StartDate       *time.Time
	EndDate         *time.Time
	ClientID        *int64
	EmployeeID      *int64
	PaymentMethodID *int64
	Status          string
}

// SaleRepository define el puerto de persistencia de ventas.
// Create asigna SaleID; Update solo se usa para la anulación.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id int64) (*entity.Sale, error)
	Update(sale *entity.Sale) error
	List(filter SaleFilter) ([]*entity.Sale, error)
	ListRecent(limit int) ([]*entity.Sale, error)
}
