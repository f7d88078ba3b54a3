package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/grifosol/grifo-api/internal/domain/entity"
)

// MethodTotal agregado de conciliación por método de pago.
type MethodTotal struct {
	MethodName       string
	TransactionCount int64
	TotalAmount      decimal.Decimal
}

// PaymentRepository define el puerto de persistencia de pagos.
// Los pagos son inmutables: no hay Update ni Delete.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id int64) (*entity.Payment, error)
	ListRecent(limit int) ([]*entity.Payment, error)
	ListByMethod(paymentMethodID int64) ([]*entity.Payment, error)
	ListByDateRange(from, to time.Time) ([]*entity.Payment, error)
	// ConciliationByDay agrupa los pagos de un día calendario por método.
	ConciliationByDay(day time.Time) ([]MethodTotal, error)
}
