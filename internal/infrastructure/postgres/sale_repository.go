package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/grifosol/grifo-api/internal/domain/entity"
	"github.com/grifosol/grifo-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `sale_id, client_id, user_id, employee_id, nozzle_id, sale_timestamp,
	total_amount, discount_amount, final_amount, payment_method_id, status, shift, notes,
	created_at, updated_at`

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta y asigna su ID.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (client_id, user_id, employee_id, nozzle_id, sale_timestamp,
			total_amount, discount_amount, final_amount, payment_method_id, status, shift, notes,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING sale_id`
	err := r.q.QueryRow(context.Background(), query,
		sale.ClientID, sale.UserID, sale.EmployeeID, sale.NozzleID, sale.SaleTimestamp,
		sale.TotalAmount, sale.DiscountAmount, sale.FinalAmount, sale.PaymentMethodID,
		sale.Status, sale.Shift, sale.Notes, sale.CreatedAt, sale.UpdatedAt,
	).Scan(&sale.SaleID)
	if err != nil {
		return fmt.Errorf("create sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID. Devuelve nil, nil si no existe.
func (r *SaleRepo) GetByID(id int64) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sale_id = $1`
	sale, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return sale, nil
}

// Update persiste el estado y las notas de una venta (solo anulación).
func (r *SaleRepo) Update(sale *entity.Sale) error {
	query := `
		UPDATE sales SET status = $2, notes = $3, updated_at = $4
		WHERE sale_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sale.SaleID, sale.Status, sale.Notes, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// List lista ventas según filtros opcionales, más reciente primero.
func (r *SaleRepo) List(filter repository.SaleFilter) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE 1=1`
	var args []any
	pos := 1
	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND sale_timestamp >= $%d", pos)
		args = append(args, *filter.StartDate)
		pos++
	}
	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND sale_timestamp <= $%d", pos)
		args = append(args, *filter.EndDate)
		pos++
	}
	if filter.ClientID != nil {
		query += fmt.Sprintf(" AND client_id = $%d", pos)
		args = append(args, *filter.ClientID)
		pos++
	}
	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND employee_id = $%d", pos)
		args = append(args, *filter.EmployeeID)
		pos++
	}
	if filter.PaymentMethodID != nil {
		query += fmt.Sprintf(" AND payment_method_id = $%d", pos)
		args = append(args, *filter.PaymentMethodID)
		pos++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filter.Status)
		pos++
	}
	query += " ORDER BY sale_timestamp DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	return scanSales(rows)
}

// ListRecent lista las últimas ventas por timestamp descendente.
func (r *SaleRepo) ListRecent(limit int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY sale_timestamp DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent sales: %w", err)
	}
	defer rows.Close()
	return scanSales(rows)
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var shift, notes *string
	err := row.Scan(
		&s.SaleID, &s.ClientID, &s.UserID, &s.EmployeeID, &s.NozzleID, &s.SaleTimestamp,
		&s.TotalAmount, &s.DiscountAmount, &s.FinalAmount, &s.PaymentMethodID,
		&s.Status, &shift, &notes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if shift != nil {
		s.Shift = *shift
	}
	if notes != nil {
		s.Notes = *notes
	}
	return &s, nil
}

func scanSales(rows pgx.Rows) ([]*entity.Sale, error) {
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
