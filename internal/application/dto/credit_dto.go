package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/grifosol/grifo-api/internal/domain/entity"
)

// AddCreditPaymentRequest body para POST /api/credits/:id/payments.
type AddCreditPaymentRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethodID *int64          `json:"payment_method_id,omitempty"`
	UserID          *int64          `json:"user_id,omitempty"`
	Reference       string          `json:"reference,omitempty"`
}

// CreditResponse representación JSON de un crédito.
type CreditResponse struct {
	CreditID     int64           `json:"credit_id"`
	ClientID     int64           `json:"client_id"`
	SaleID       int64           `json:"sale_id"`
	CreditAmount decimal.Decimal `json:"credit_amount"`
	AmountPaid   decimal.Decimal `json:"amount_paid"`
	Balance      decimal.Decimal `json:"balance"`
	DueDate      time.Time       `json:"due_date"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// FromCredit mapea la entidad a su respuesta JSON.
func FromCredit(c *entity.Credit) CreditResponse {
	return CreditResponse{
		CreditID:     c.CreditID,
		ClientID:     c.ClientID,
		SaleID:       c.SaleID,
		CreditAmount: c.CreditAmount,
		AmountPaid:   c.AmountPaid,
		Balance:      c.Balance(),
		DueDate:      c.DueDate,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// FromCredits mapea un listado completo.
func FromCredits(credits []*entity.Credit) []CreditResponse {
	out := make([]CreditResponse, 0, len(credits))
	for _, c := range credits {
		out = append(out, FromCredit(c))
	}
	return out
}

// CreditsDashboardResponse conteos para el tablero de créditos.
type CreditsDashboardResponse struct {
	Total   int64 `json:"total"`   // pendientes
	Overdue int64 `json:"overdue"` // vencidos y pendientes
	Paid    int64 `json:"paid"`
}
