package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/grifosol/grifo-api/internal/domain/entity"
	"github.com/grifosol/grifo-api/internal/domain/repository"
)

var _ repository.TankRepository = (*TankRepo)(nil)

const tankColumns = `tank_id, tank_name, product_id, total_capacity, current_stock,
	COALESCE(location, ''), COALESCE(description, ''), created_at, updated_at`

// TankRepo implementación de TankRepository sobre PostgreSQL (usable con pool o tx).
type TankRepo struct {
	q Querier
}

// NewTankRepository construye el adaptador de tanques. Pasar pool o tx (Querier).
func NewTankRepository(q Querier) *TankRepo {
	return &TankRepo{q: q}
}

// GetByID obtiene un tanque por ID. Devuelve nil, nil si no existe.
func (r *TankRepo) GetByID(id int64) (*entity.Tank, error) {
	query := `SELECT ` + tankColumns + ` FROM tanks WHERE tank_id = $1`
	return r.get(query, id, "get tank")
}

// GetForUpdate obtiene el tanque y bloquea la fila (SELECT FOR UPDATE)
// mientras dura la secuencia validar-stock-luego-actualizar.
func (r *TankRepo) GetForUpdate(id int64) (*entity.Tank, error) {
	query := `SELECT ` + tankColumns + ` FROM tanks WHERE tank_id = $1 FOR UPDATE`
	return r.get(query, id, "get tank for update")
}

func (r *TankRepo) get(query string, id int64, op string) (*entity.Tank, error) {
	var t entity.Tank
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.TankID, &t.TankName, &t.ProductID, &t.TotalCapacity, &t.CurrentStock,
		&t.Location, &t.Description, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &t, nil
}

// UpdateStock persiste el nuevo nivel de stock del tanque.
func (r *TankRepo) UpdateStock(tank *entity.Tank) error {
	query := `UPDATE tanks SET current_stock = $2, updated_at = $3 WHERE tank_id = $1`
	_, err := r.q.Exec(context.Background(), query, tank.TankID, tank.CurrentStock, tank.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update tank stock: %w", err)
	}
	return nil
}

// List lista todos los tanques.
func (r *TankRepo) List() ([]*entity.Tank, error) {
	query := `SELECT ` + tankColumns + ` FROM tanks ORDER BY tank_id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list tanks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tank
	for rows.Next() {
		var t entity.Tank
		if err := rows.Scan(&t.TankID, &t.TankName, &t.ProductID, &t.TotalCapacity, &t.CurrentStock,
			&t.Location, &t.Description, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tank: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
