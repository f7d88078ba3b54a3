package repository

import "github.com/grifosol/grifo-api/internal/domain/entity"

// TankRepository define el puerto de persistencia de tanques.
// GetForUpdate bloquea la fila del tanque (SELECT FOR UPDATE) mientras dura la
// secuencia validar-stock-luego-actualizar, para evitar lost updates entre
// movimientos concurrentes.
type TankRepository interface {
	GetByID(id int64) (*entity.Tank, error)
	GetForUpdate(id int64) (*entity.Tank, error)
	UpdateStock(tank *entity.Tank) error
	List() ([]*entity.Tank, error)
}
