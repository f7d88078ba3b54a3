package payments

import (
	"context"
	"fmt"
	"time"

	"github.com/grifosol/grifo-api/internal/application/dto"
	"github.com/grifosol/grifo-api/internal/domain"
	"github.com/grifosol/grifo-api/internal/domain/entity"
	"github.com/grifosol/grifo-api/internal/domain/repository"
)

// UseCase expone las consultas del libro de pagos. Los pagos solo se crean
// como efecto de una venta al contado o de un abono a crédito, nunca desde
// aquí.
type UseCase struct {
	paymentRepo repository.PaymentRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(paymentRepo repository.PaymentRepository) *UseCase {
	return &UseCase{paymentRepo: paymentRepo}
}

// FindRecent devuelve los últimos pagos por timestamp descendente.
func (uc *UseCase) FindRecent(ctx context.Context, limit int) ([]*entity.Payment, error) {
	if limit <= 0 {
		limit = 25
	}
	if limit > 100 {
		limit = 100
	}
	return uc.paymentRepo.ListRecent(limit)
}

// GetByID devuelve un pago o ErrNotFound.
func (uc *UseCase) GetByID(ctx context.Context, id int64) (*entity.Payment, error) {
	payment, err := uc.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, fmt.Errorf("%w: pago %d", domain.ErrNotFound, id)
	}
	return payment, nil
}

// FindByMethod lista los pagos registrados con un método dado.
func (uc *UseCase) FindByMethod(ctx context.Context, paymentMethodID int64) ([]*entity.Payment, error) {
	return uc.paymentRepo.ListByMethod(paymentMethodID)
}

// FindByDateRange lista los pagos en [from, to], fechas "2006-01-02".
// El día final es inclusivo.
func (uc *UseCase) FindByDateRange(ctx context.Context, fromStr, toStr string) ([]*entity.Payment, error) {
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	to = to.Add(24*time.Hour - time.Nanosecond)
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	return uc.paymentRepo.ListByDateRange(from, to)
}

// Conciliation agrupa los pagos de un día calendario por método de pago,
// para el cierre de caja. Fecha vacía = hoy.
func (uc *UseCase) Conciliation(ctx context.Context, dayStr string) ([]dto.ConciliationRow, error) {
	day := time.Now()
	if dayStr != "" {
		parsed, err := time.Parse("2006-01-02", dayStr)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		day = parsed
	}
	rows, err := uc.paymentRepo.ConciliationByDay(day)
	if err != nil {
		return nil, err
	}
	return dto.FromMethodTotals(rows), nil
}
