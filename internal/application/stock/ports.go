package stock

import (
	"context"

	"github.com/grifosol/grifo-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad entre el asiento del
// movimiento y la actualización del stock del tanque.
type TxRunner interface {
	RunStock(ctx context.Context, fn func(
		movementRepo repository.StockMovementRepository,
		tankRepo repository.TankRepository,
	) error) error
}
