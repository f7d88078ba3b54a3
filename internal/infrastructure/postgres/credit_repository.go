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

var _ repository.CreditRepository = (*CreditRepo)(nil)

const creditColumns = `credit_id, client_id, sale_id, credit_amount, amount_paid,
	due_date, status, created_at, updated_at`

// CreditRepo implementación de CreditRepository sobre PostgreSQL (usable con pool o tx).
type CreditRepo struct {
	q Querier
}

// NewCreditRepository construye el adaptador de créditos. Pasar pool o tx (Querier).
func NewCreditRepository(q Querier) *CreditRepo {
	return &CreditRepo{q: q}
}

// Create persiste un crédito y asigna su ID.
func (r *CreditRepo) Create(credit *entity.Credit) error {
	query := `
		INSERT INTO credits (client_id, sale_id, credit_amount, amount_paid, due_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING credit_id`
	err := r.q.QueryRow(context.Background(), query,
		credit.ClientID, credit.SaleID, credit.CreditAmount, credit.AmountPaid,
		credit.DueDate, credit.Status, credit.CreatedAt, credit.UpdatedAt,
	).Scan(&credit.CreditID)
	if err != nil {
		return fmt.Errorf("create credit: %w", err)
	}
	return nil
}

// GetByID obtiene un crédito por ID. Devuelve nil, nil si no existe.
func (r *CreditRepo) GetByID(id int64) (*entity.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE credit_id = $1`
	return r.get(query, id, "get credit")
}

// GetForUpdate obtiene el crédito y bloquea la fila (SELECT FOR UPDATE) para
// la secuencia verificar-saldo-luego-abonar.
func (r *CreditRepo) GetForUpdate(id int64) (*entity.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE credit_id = $1 FOR UPDATE`
	return r.get(query, id, "get credit for update")
}

func (r *CreditRepo) get(query string, id int64, op string) (*entity.Credit, error) {
	var c entity.Credit
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.CreditID, &c.ClientID, &c.SaleID, &c.CreditAmount, &c.AmountPaid,
		&c.DueDate, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

// Update persiste el acumulado pagado y el estado del crédito.
func (r *CreditRepo) Update(credit *entity.Credit) error {
	query := `
		UPDATE credits SET amount_paid = $2, status = $3, updated_at = $4
		WHERE credit_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		credit.CreditID, credit.AmountPaid, credit.Status, credit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update credit: %w", err)
	}
	return nil
}

// List lista créditos según filtros opcionales, vencimiento ascendente.
func (r *CreditRepo) List(filter repository.CreditFilter, now time.Time) ([]*entity.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE 1=1`
	var args []any
	pos := 1
	if filter.ClientID != nil {
		query += fmt.Sprintf(" AND client_id = $%d", pos)
		args = append(args, *filter.ClientID)
		pos++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filter.Status)
		pos++
	}
	if filter.Overdue {
		query += fmt.Sprintf(" AND status = 'pending' AND due_date < $%d", pos)
		args = append(args, now)
		pos++
	}
	query += " ORDER BY due_date ASC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list credits: %w", err)
	}
	defer rows.Close()
	return scanCredits(rows)
}

// ListOverdue lista los créditos pendientes con vencimiento pasado.
func (r *CreditRepo) ListOverdue(now time.Time) ([]*entity.Credit, error) {
	return r.List(repository.CreditFilter{Overdue: true}, now)
}

// CountByStatus cuenta créditos por estado.
func (r *CreditRepo) CountByStatus(status string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM credits WHERE status = $1`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count credits by status: %w", err)
	}
	return n, nil
}

// CountOverdue cuenta los créditos pendientes vencidos.
func (r *CreditRepo) CountOverdue(now time.Time) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM credits WHERE status = 'pending' AND due_date < $1`, now).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count overdue credits: %w", err)
	}
	return n, nil
}

func scanCredits(rows pgx.Rows) ([]*entity.Credit, error) {
	var list []*entity.Credit
	for rows.Next() {
		var c entity.Credit
		if err := rows.Scan(&c.CreditID, &c.ClientID, &c.SaleID, &c.CreditAmount, &c.AmountPaid,
			&c.DueDate, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan credit: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
