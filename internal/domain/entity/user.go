package entity

import "time"

// Roles de usuario para RBAC y la política de anulación de ventas.
const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RoleSeller     = "seller"
)

// User es la cuenta que opera el sistema (cajero, administrador).
type User struct {
	UserID       int64
	EmployeeID   *int64
	Username     string // único
	PasswordHash string
	FullName     string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
