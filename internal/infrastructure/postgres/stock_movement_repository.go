package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/grifosol/grifo-api/internal/domain/entity"
	"github.com/grifosol/grifo-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `stock_movement_id, product_id, tank_id, user_id, movement_timestamp,
	movement_type, quantity, sale_detail_id, delivery_detail_id, COALESCE(description, '')`

// StockMovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Append-only: solo insert y lecturas.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento y asigna su ID.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (product_id, tank_id, user_id, movement_timestamp,
			movement_type, quantity, sale_detail_id, delivery_detail_id, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING stock_movement_id`
	err := r.q.QueryRow(context.Background(), query,
		movement.ProductID, movement.TankID, movement.UserID, movement.MovementTimestamp,
		movement.MovementType, movement.Quantity, movement.SaleDetailID,
		movement.DeliveryDetailID, movement.Description,
	).Scan(&movement.StockMovementID)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Devuelve nil, nil si no existe.
func (r *StockMovementRepo) GetByID(id int64) (*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE stock_movement_id = $1`
	var m entity.StockMovement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.StockMovementID, &m.ProductID, &m.TankID, &m.UserID, &m.MovementTimestamp,
		&m.MovementType, &m.Quantity, &m.SaleDetailID, &m.DeliveryDetailID, &m.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	return &m, nil
}

// ListByTank lista los asientos de un tanque, más reciente primero.
func (r *StockMovementRepo) ListByTank(tankID int64, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements
		WHERE tank_id = $1 ORDER BY movement_timestamp DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, tankID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by tank: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.StockMovementID, &m.ProductID, &m.TankID, &m.UserID, &m.MovementTimestamp,
			&m.MovementType, &m.Quantity, &m.SaleDetailID, &m.DeliveryDetailID, &m.Description); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
