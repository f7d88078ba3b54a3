package entity

import "time"

// Client es dato maestro; su ciclo de vida queda fuera de este núcleo.
type Client struct {
	ClientID       int64
	ClientType     string
	Category       string
	FirstName      string
	LastName       string
	CompanyName    string
	DocumentType   string
	DocumentNumber string
	Address        string
	Phone          string
	Email          string
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
