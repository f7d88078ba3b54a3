package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/grifosol/grifo-api/internal/domain/entity"
)

// CreateSaleRequest body para POST /api/sales.
// GrossAmount es el canal estructurado para el monto bruto (con IGV); por
// compatibilidad también se acepta el token legado en notes
// (pagado_bruto=118.00). PaymentMethod permite enviar el nombre del método
// ("credito", "efectivo") en lugar del id.
type CreateSaleRequest struct {
	ClientID            *int64           `json:"client_id,omitempty"`
	UserID              int64            `json:"user_id"`
	EmployeeID          *int64           `json:"employee_id,omitempty"`
	NozzleID            int64            `json:"nozzle_id"`
	Quantity            decimal.Decimal  `json:"quantity,omitempty"`
	UnitPrice           decimal.Decimal  `json:"unit_price,omitempty"`
	TotalAmount         decimal.Decimal  `json:"total_amount"`
	DiscountAmount      decimal.Decimal  `json:"discount_amount,omitempty"`
	FinalAmount         decimal.Decimal  `json:"final_amount"`
	GrossAmount         *decimal.Decimal `json:"gross_amount,omitempty"`
	PaymentMethodID     int64            `json:"payment_method_id,omitempty"`
	PaymentMethod       string           `json:"payment_method,omitempty"`
	Shift               string           `json:"shift,omitempty"`
	Notes               string           `json:"notes,omitempty"`
	DueDate             string           `json:"due_date,omitempty"` // YYYY-MM-DD, solo ventas a crédito
	ApplyDynamicPricing bool             `json:"applyDynamicPricing,omitempty"`
}

// CancelSaleRequest body para POST /api/sales/:id/cancel.
type CancelSaleRequest struct {
	Reason string `json:"reason"`
}

// SaleFilterRequest filtros de query para listados de ventas.
type SaleFilterRequest struct {
	StartDate       string `query:"start_date"`
	EndDate         string `query:"end_date"`
	ClientID        *int64 `query:"client_id"`
	EmployeeID      *int64 `query:"employee_id"`
	PaymentMethodID *int64 `query:"payment_method_id"`
	Status          string `query:"status"`
}

// SaleResponse representación JSON de una venta.
type SaleResponse struct {
	SaleID          int64           `json:"sale_id"`
	ClientID        *int64          `json:"client_id,omitempty"`
	UserID          int64           `json:"user_id"`
	EmployeeID      *int64          `json:"employee_id,omitempty"`
	NozzleID        int64           `json:"nozzle_id"`
	SaleTimestamp   time.Time       `json:"sale_timestamp"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	FinalAmount     decimal.Decimal `json:"final_amount"`
	PaymentMethodID int64           `json:"payment_method_id"`
	Status          string          `json:"status"`
	Shift           string          `json:"shift,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// FromSale mapea la entidad a su respuesta JSON.
func FromSale(s *entity.Sale) SaleResponse {
	return SaleResponse{
		SaleID:          s.SaleID,
		ClientID:        s.ClientID,
		UserID:          s.UserID,
		EmployeeID:      s.EmployeeID,
		NozzleID:        s.NozzleID,
		SaleTimestamp:   s.SaleTimestamp,
		TotalAmount:     s.TotalAmount,
		DiscountAmount:  s.DiscountAmount,
		FinalAmount:     s.FinalAmount,
		PaymentMethodID: s.PaymentMethodID,
		Status:          s.Status,
		Shift:           s.Shift,
		Notes:           s.Notes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromSales mapea un listado completo.
func FromSales(sales []*entity.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, FromSale(s))
	}
	return out
}

// SalesSummary resumen agregado del historial de ventas.
type SalesSummary struct {
	TotalSales           int             `json:"total_sales"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	AverageTicket        decimal.Decimal `json:"average_ticket"`
	SalesByStatus        map[string]int  `json:"sales_by_status"`
	SalesByPaymentMethod map[string]int  `json:"sales_by_payment_method"`
}

// SalesHistoryResponse historial filtrado con resumen.
type SalesHistoryResponse struct {
	Sales   []SaleResponse `json:"sales"`
	Summary SalesSummary   `json:"summary"`
}
