package repository

import "github.com/grifosol/grifo-api/internal/domain/entity"

// PaymentMethodRepository acceso de solo lectura a los métodos de pago.
// GetByName espera el nombre ya normalizado (minúsculas, sin tildes).
type PaymentMethodRepository interface {
	GetByID(id int64) (*entity.PaymentMethod, error)
	GetByName(normalizedName string) (*entity.PaymentMethod, error)
	ListActive() ([]*entity.PaymentMethod, error)
}
