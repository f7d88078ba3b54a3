package repository

import (
	"time"

	"github.com/grifosol/grifo-api/internal/domain/entity"
)

// CreditFilter filtros para listados de créditos.
type CreditFilter struct {
	ClientID *int64
	Status   string
	Overdue  bool // due_date pasada y saldo pendiente
}

// CreditRepository define el puerto de persistencia de créditos.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para la secuencia
// verificar-saldo-luego-abonar dentro de una transacción.
type CreditRepository interface {
	Create(credit *entity.Credit) error
	GetByID(id int64) (*entity.Credit, error)
	GetForUpdate(id int64) (*entity.Credit, error)
	Update(credit *entity.Credit) error
	List(filter CreditFilter, now time.Time) ([]*entity.Credit, error)
	ListOverdue(now time.Time) ([]*entity.Credit, error)
	CountByStatus(status string) (int64, error)
	CountOverdue(now time.Time) (int64, error)
}
