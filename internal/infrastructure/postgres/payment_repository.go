package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/grifosol/grifo-api/internal/domain/entity"
	"github.com/grifosol/grifo-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

const paymentColumns = `payment_id, user_id, sale_id, credit_id, payment_timestamp,
	amount, payment_method_id, notes, payment_type, status`

// PaymentRepo implementación de PaymentRepository sobre PostgreSQL (usable con pool o tx).
// Los pagos son inmutables: solo insert y lecturas.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador de pagos. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un pago y asigna su ID.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (user_id, sale_id, credit_id, payment_timestamp, amount,
			payment_method_id, notes, payment_type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING payment_id`
	err := r.q.QueryRow(context.Background(), query,
		payment.UserID, payment.SaleID, payment.CreditID, payment.PaymentTimestamp,
		payment.Amount, payment.PaymentMethodID, payment.Notes, payment.PaymentType, payment.Status,
	).Scan(&payment.PaymentID)
	if err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID. Devuelve nil, nil si no existe.
func (r *PaymentRepo) GetByID(id int64) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1`
	var p entity.Payment
	var notes *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.PaymentID, &p.UserID, &p.SaleID, &p.CreditID, &p.PaymentTimestamp,
		&p.Amount, &p.PaymentMethodID, &notes, &p.PaymentType, &p.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if notes != nil {
		p.Notes = *notes
	}
	return &p, nil
}

// ListRecent lista los últimos pagos por timestamp descendente.
func (r *PaymentRepo) ListRecent(limit int) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY payment_timestamp DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent payments: %w", err)
	}
	defer rows.Close()
	return scanPayments(rows)
}

// ListByMethod lista los pagos registrados con un método dado.
func (r *PaymentRepo) ListByMethod(paymentMethodID int64) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_method_id = $1 ORDER BY payment_timestamp DESC`
	rows, err := r.q.Query(context.Background(), query, paymentMethodID)
	if err != nil {
		return nil, fmt.Errorf("list payments by method: %w", err)
	}
	defer rows.Close()
	return scanPayments(rows)
}

// ListByDateRange lista los pagos en [from, to].
func (r *PaymentRepo) ListByDateRange(from, to time.Time) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
		WHERE payment_timestamp >= $1 AND payment_timestamp <= $2
		ORDER BY payment_timestamp DESC`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list payments by date range: %w", err)
	}
	defer rows.Close()
	return scanPayments(rows)
}

// ConciliationByDay agrupa los pagos de un día calendario por método de pago,
// para el cierre de caja.
func (r *PaymentRepo) ConciliationByDay(day time.Time) ([]repository.MethodTotal, error) {
	query := `
		SELECT pm.method_name, COUNT(p.payment_id), COALESCE(SUM(p.amount), 0)
		FROM payments p
		JOIN payment_methods pm ON pm.payment_method_id = p.payment_method_id
		WHERE p.payment_timestamp >= $1 AND p.payment_timestamp < $2
		GROUP BY pm.method_name
		ORDER BY pm.method_name`
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	rows, err := r.q.Query(context.Background(), query, start, end)
	if err != nil {
		return nil, fmt.Errorf("conciliation by day: %w", err)
	}
	defer rows.Close()
	var list []repository.MethodTotal
	for rows.Next() {
		var t repository.MethodTotal
		if err := rows.Scan(&t.MethodName, &t.TransactionCount, &t.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan conciliation row: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func scanPayments(rows pgx.Rows) ([]*entity.Payment, error) {
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		var notes *string
		if err := rows.Scan(&p.PaymentID, &p.UserID, &p.SaleID, &p.CreditID, &p.PaymentTimestamp,
			&p.Amount, &p.PaymentMethodID, &notes, &p.PaymentType, &p.Status); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		if notes != nil {
			p.Notes = *notes
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
