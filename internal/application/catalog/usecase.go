package catalog

import (
	"context"
	"fmt"

	"github.com/grifosol/grifo-api/internal/domain"
	"github.com/grifosol/grifo-api/internal/domain/entity"
	"github.com/grifosol/grifo-api/internal/domain/repository"
)

// UseCase expone el dato de referencia de solo lectura: métodos de pago y
// tanques. El mantenimiento de estos catálogos queda fuera del núcleo.
type UseCase struct {
	methodRepo repository.PaymentMethodRepository
	tankRepo   repository.TankRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(methodRepo repository.PaymentMethodRepository, tankRepo repository.TankRepository) *UseCase {
	return &UseCase{methodRepo: methodRepo, tankRepo: tankRepo}
}

// ListPaymentMethods devuelve los métodos de pago activos.
func (uc *UseCase) ListPaymentMethods(ctx context.Context) ([]*entity.PaymentMethod, error) {
	return uc.methodRepo.ListActive()
}

// ListTanks devuelve todos los tanques con su stock vigente.
func (uc *UseCase) ListTanks(ctx context.Context) ([]*entity.Tank, error) {
	return uc.tankRepo.List()
}

// GetTank devuelve un tanque o ErrNotFound.
func (uc *UseCase) GetTank(ctx context.Context, id int64) (*entity.Tank, error) {
	tank, err := uc.tankRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tank == nil {
		return nil, fmt.Errorf("%w: tanque %d", domain.ErrNotFound, id)
	}
	return tank, nil
}
