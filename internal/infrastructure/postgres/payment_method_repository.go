package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/grifosol/grifo-api/internal/domain/entity"
	"github.com/grifosol/grifo-api/internal/domain/repository"
)

var _ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)

const methodColumns = `payment_method_id, method_name, COALESCE(description, ''),
	COALESCE(settlement_kind, ''), is_active, created_at, updated_at`

// PaymentMethodRepo acceso de solo lectura a payment_methods (usable con pool o tx).
type PaymentMethodRepo struct {
	q Querier
}

// NewPaymentMethodRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentMethodRepository(q Querier) *PaymentMethodRepo {
	return &PaymentMethodRepo{q: q}
}

// GetByID obtiene un método por ID. Devuelve nil, nil si no existe.
func (r *PaymentMethodRepo) GetByID(id int64) (*entity.PaymentMethod, error) {
	query := `SELECT ` + methodColumns + ` FROM payment_methods WHERE payment_method_id = $1`
	var m entity.PaymentMethod
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.PaymentMethodID, &m.MethodName, &m.Description, &m.SettlementKind,
		&m.IsActive, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment method: %w", err)
	}
	return &m, nil
}

// GetByName busca por nombre, insensible a mayúsculas. El nombre llega ya
// normalizado (sin tildes); los nombres con tilde almacenados se resuelven en
// el caso de uso recorriendo los activos.
func (r *PaymentMethodRepo) GetByName(normalizedName string) (*entity.PaymentMethod, error) {
	query := `SELECT ` + methodColumns + ` FROM payment_methods WHERE LOWER(method_name) = $1 LIMIT 1`
	var m entity.PaymentMethod
	err := r.q.QueryRow(context.Background(), query, normalizedName).Scan(
		&m.PaymentMethodID, &m.MethodName, &m.Description, &m.SettlementKind,
		&m.IsActive, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment method by name: %w", err)
	}
	return &m, nil
}

// ListActive lista los métodos de pago activos.
func (r *PaymentMethodRepo) ListActive() ([]*entity.PaymentMethod, error) {
	query := `SELECT ` + methodColumns + ` FROM payment_methods WHERE is_active ORDER BY payment_method_id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentMethod
	for rows.Next() {
		var m entity.PaymentMethod
		if err := rows.Scan(&m.PaymentMethodID, &m.MethodName, &m.Description, &m.SettlementKind,
			&m.IsActive, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
