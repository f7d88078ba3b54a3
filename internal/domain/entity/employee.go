package entity

import "time"

// Employee es dato maestro referenciado opcionalmente por la venta.
type Employee struct {
	EmployeeID int64
	DNI        string
	FirstName  string
	LastName   string
	Position   string
	Phone      string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
