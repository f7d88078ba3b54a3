package repository

import "github.com/grifosol/grifo-api/internal/domain/entity"

// StockMovementRepository define el puerto del libro de movimientos de stock.
// Es append-only: no expone update ni delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id int64) (*entity.StockMovement, error)
	ListByTank(tankID int64, limit, offset int) ([]*entity.StockMovement, error)
}
