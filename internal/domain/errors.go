package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrUserNotFound  = errors.New("usuario no encontrado")
	ErrUsernameTaken = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrForbidden     = errors.New("acceso denegado")

	// Venta
	ErrInvalidPaymentMethod = errors.New("método de pago inválido")
	ErrInvalidNozzle        = errors.New("boquilla inválida")
	ErrInvalidAmount        = errors.New("monto de venta inválido")
	ErrCreditRequiresClient = errors.New("crédito requiere cliente")
	ErrAlreadyCancelled     = errors.New("la venta ya está anulada")

	// Inventario
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrCapacityExceeded  = errors.New("no se puede sobrepasar la capacidad máxima del tanque")

	// Créditos
	ErrOverpayment = errors.New("el pago no puede ser mayor al saldo pendiente")
)
