package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/grifosol/grifo-api/internal/domain/entity"
	"github.com/grifosol/grifo-api/internal/domain/repository"
)

// Adaptadores de solo lectura sobre datos maestros. El núcleo solo los usa
// para validar referencias antes de escribir.

var _ repository.NozzleRepository = (*NozzleRepo)(nil)
var _ repository.ProductRepository = (*ProductRepo)(nil)
var _ repository.ClientRepository = (*ClientRepo)(nil)
var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)
var _ repository.SaleDetailRepository = (*SaleDetailRepo)(nil)
var _ repository.DeliveryDetailRepository = (*DeliveryDetailRepo)(nil)

// NozzleRepo lookup de boquillas (usable con pool o tx).
type NozzleRepo struct {
	q Querier
}

// NewNozzleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNozzleRepository(q Querier) *NozzleRepo {
	return &NozzleRepo{q: q}
}

// GetByID obtiene una boquilla por ID. Devuelve nil, nil si no existe.
func (r *NozzleRepo) GetByID(id int64) (*entity.Nozzle, error) {
	query := `
		SELECT nozzle_id, pump_id, product_id, tank_id, nozzle_number, COALESCE(estado, ''), created_at, updated_at
		FROM nozzles WHERE nozzle_id = $1`
	var n entity.Nozzle
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&n.NozzleID, &n.PumpID, &n.ProductID, &n.TankID, &n.NozzleNumber,
		&n.Estado, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get nozzle: %w", err)
	}
	return &n, nil
}

// ProductRepo lookup de productos.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `
		SELECT product_id, name, COALESCE(description, ''), COALESCE(category, ''),
			COALESCE(fuel_type, ''), COALESCE(unit, ''), unit_price, is_active, created_at, updated_at
		FROM products WHERE product_id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ProductID, &p.Name, &p.Description, &p.Category, &p.FuelType,
		&p.Unit, &p.UnitPrice, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ClientRepo lookup de clientes.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// GetByID obtiene un cliente por ID. Devuelve nil, nil si no existe.
func (r *ClientRepo) GetByID(id int64) (*entity.Client, error) {
	query := `
		SELECT client_id, COALESCE(client_type, ''), COALESCE(category, ''),
			COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(company_name, ''),
			COALESCE(document_type, ''), COALESCE(document_number, ''), COALESCE(address, ''),
			COALESCE(phone, ''), COALESCE(email, ''), COALESCE(notes, ''), created_at, updated_at
		FROM clients WHERE client_id = $1`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ClientID, &c.ClientType, &c.Category, &c.FirstName, &c.LastName, &c.CompanyName,
		&c.DocumentType, &c.DocumentNumber, &c.Address, &c.Phone, &c.Email, &c.Notes,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// EmployeeRepo lookup de empleados.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// GetByID obtiene un empleado por ID. Devuelve nil, nil si no existe.
func (r *EmployeeRepo) GetByID(id int64) (*entity.Employee, error) {
	query := `
		SELECT employee_id, COALESCE(dni, ''), first_name, last_name,
			COALESCE(position, ''), COALESCE(phone, ''), is_active, created_at, updated_at
		FROM employees WHERE employee_id = $1`
	var e entity.Employee
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.EmployeeID, &e.DNI, &e.FirstName, &e.LastName, &e.Position,
		&e.Phone, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// SaleDetailRepo valida la existencia de detalles de venta.
type SaleDetailRepo struct {
	q Querier
}

// NewSaleDetailRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleDetailRepository(q Querier) *SaleDetailRepo {
	return &SaleDetailRepo{q: q}
}

// Exists verifica si existe el detalle de venta.
func (r *SaleDetailRepo) Exists(id int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM sale_details WHERE sale_detail_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("sale detail exists: %w", err)
	}
	return exists, nil
}

// DeliveryDetailRepo valida la existencia de detalles de entrega.
type DeliveryDetailRepo struct {
	q Querier
}

// NewDeliveryDetailRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDeliveryDetailRepository(q Querier) *DeliveryDetailRepo {
	return &DeliveryDetailRepo{q: q}
}

// Exists verifica si existe el detalle de entrega.
func (r *DeliveryDetailRepo) Exists(id int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM delivery_details WHERE delivery_detail_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("delivery detail exists: %w", err)
	}
	return exists, nil
}
