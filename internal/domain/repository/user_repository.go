package repository

import "github.com/grifosol/grifo-api/internal/domain/entity"

// UserRepository define el puerto de persistencia de usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
}
