package repository

import "github.com/grifosol/grifo-api/internal/domain/entity"

// Puertos de solo lectura sobre datos maestros. Su ciclo de vida (CRUD)
// queda fuera de este núcleo; aquí solo se validan referencias.

type NozzleRepository interface {
	GetByID(id int64) (*entity.Nozzle, error)
}

type ProductRepository interface {
	GetByID(id int64) (*entity.Product, error)
}

type ClientRepository interface {
	GetByID(id int64) (*entity.Client, error)
}

type EmployeeRepository interface {
	GetByID(id int64) (*entity.Employee, error)
}

// SaleDetailRepository valida la existencia de detalles de venta enlazados
// desde movimientos de stock.
type SaleDetailRepository interface {
	Exists(id int64) (bool, error)
}

// DeliveryDetailRepository valida la existencia de detalles de entrega
// enlazados desde movimientos de stock.
type DeliveryDetailRepository interface {
	Exists(id int64) (bool, error)
}
