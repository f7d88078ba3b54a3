package entity

import "time"

// Nozzle es un punto de despacho de un surtidor, asociado a un producto y a un tanque.
type Nozzle struct {
	NozzleID     int64
	PumpID       int64
	ProductID    int64
	TankID       int64
	NozzleNumber int64 // único
	Estado       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
