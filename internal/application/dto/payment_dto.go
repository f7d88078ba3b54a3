package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/grifosol/grifo-api/internal/domain/entity"
	"github.com/grifosol/grifo-api/internal/domain/repository"
)

// PaymentResponse representación JSON de un pago.
type PaymentResponse struct {
	PaymentID        int64           `json:"payment_id"`
	UserID           *int64          `json:"user_id,omitempty"`
	SaleID           *int64          `json:"sale_id,omitempty"`
	CreditID         *int64          `json:"credit_id,omitempty"`
	PaymentTimestamp time.Time       `json:"payment_timestamp"`
	Amount           decimal.Decimal `json:"amount"`
	PaymentMethodID  int64           `json:"payment_method_id"`
	Notes            string          `json:"notes,omitempty"`
	PaymentType      string          `json:"payment_type"`
	Status           string          `json:"status"`
}

// FromPayment mapea la entidad a su respuesta JSON.
func FromPayment(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:        p.PaymentID,
		UserID:           p.UserID,
		SaleID:           p.SaleID,
		CreditID:         p.CreditID,
		PaymentTimestamp: p.PaymentTimestamp,
		Amount:           p.Amount,
		PaymentMethodID:  p.PaymentMethodID,
		Notes:            p.Notes,
		PaymentType:      p.PaymentType,
		Status:           p.Status,
	}
}

// FromPayments mapea un listado completo.
func FromPayments(payments []*entity.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}

// ConciliationRow una fila del reporte de conciliación diaria por método.
type ConciliationRow struct {
	PaymentMethod    string          `json:"payment_method"`
	TransactionCount int64           `json:"transaction_count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
}

// FromMethodTotals mapea el agregado del repositorio.
func FromMethodTotals(rows []repository.MethodTotal) []ConciliationRow {
	out := make([]ConciliationRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, ConciliationRow{
			PaymentMethod:    r.MethodName,
			TransactionCount: r.TransactionCount,
			TotalAmount:      r.TotalAmount,
		})
	}
	return out
}

// PaymentMethodResponse dato de referencia de métodos de pago.
type PaymentMethodResponse struct {
	PaymentMethodID int64  `json:"payment_method_id"`
	MethodName      string `json:"method_name"`
	Description     string `json:"description,omitempty"`
	SettlementKind  string `json:"settlement_kind,omitempty"`
	IsActive        bool   `json:"is_active"`
}

// FromPaymentMethod mapea la entidad a su respuesta JSON.
func FromPaymentMethod(pm *entity.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		PaymentMethodID: pm.PaymentMethodID,
		MethodName:      pm.MethodName,
		Description:     pm.Description,
		SettlementKind:  pm.SettlementKind,
		IsActive:        pm.IsActive,
	}
}
