package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/grifosol/grifo-api/internal/application/dto"
	"github.com/grifosol/grifo-api/internal/domain"
	"github.com/grifosol/grifo-api/internal/domain/entity"
	"github.com/grifosol/grifo-api/internal/domain/repository"
)

// normalizeRecentLimit acota el límite de "recientes" (default 25, 1..100).
func normalizeRecentLimit(limit int) int {
	if limit <= 0 {
		return 25
	}
	if limit > 100 {
		return 100
	}
	return limit
}

// FindRecent devuelve las últimas ventas por timestamp descendente.
func (uc *UseCase) FindRecent(ctx context.Context, limit int) ([]*entity.Sale, error) {
	return uc.saleRepo.ListRecent(normalizeRecentLimit(limit))
}

// GetByID devuelve una venta o ErrNotFound.
func (uc *UseCase) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, fmt.Errorf("%w: venta %d", domain.ErrNotFound, id)
	}
	return sale, nil
}

// FindAll lista ventas con filtros opcionales, más reciente primero.
func (uc *UseCase) FindAll(ctx context.Context, in dto.SaleFilterRequest) ([]*entity.Sale, error) {
	filter, err := toSaleFilter(in)
	if err != nil {
		return nil, err
	}
	return uc.saleRepo.List(filter)
}

// GetHistory devuelve el listado filtrado junto con el resumen agregado
// (totales, ticket promedio, conteos por estado y por método de pago).
// Un resultado vacío produce un resumen en ceros, nunca un error.
func (uc *UseCase) GetHistory(ctx context.Context, in dto.SaleFilterRequest) (*dto.SalesHistoryResponse, error) {
	sales, err := uc.FindAll(ctx, in)
	if err != nil {
		return nil, err
	}

	methodNames := map[int64]string{}
	if methods, err := uc.methodRepo.ListActive(); err == nil {
		for _, m := range methods {
			methodNames[m.PaymentMethodID] = m.MethodName
		}
	}

	summary := dto.SalesSummary{
		TotalSales:           len(sales),
		TotalAmount:          decimal.Zero,
		AverageTicket:        decimal.Zero,
		SalesByStatus:        map[string]int{},
		SalesByPaymentMethod: map[string]int{},
	}
	for _, s := range sales {
		summary.TotalAmount = summary.TotalAmount.Add(s.FinalAmount)
		summary.SalesByStatus[s.Status]++
		name, ok := methodNames[s.PaymentMethodID]
		if !ok {
			name = "unknown"
		}
		summary.SalesByPaymentMethod[name]++
	}
	if len(sales) > 0 {
		summary.AverageTicket = summary.TotalAmount.Div(decimal.NewFromInt(int64(len(sales)))).Round(2)
	}

	return &dto.SalesHistoryResponse{
		Sales:   dto.FromSales(sales),
		Summary: summary,
	}, nil
}

func toSaleFilter(in dto.SaleFilterRequest) (repository.SaleFilter, error) {
	filter := repository.SaleFilter{
		ClientID:        in.ClientID,
		EmployeeID:      in.EmployeeID,
		PaymentMethodID: in.PaymentMethodID,
		Status:          in.Status,
	}
	if in.StartDate != "" {
		t, err := time.Parse("2006-01-02", in.StartDate)
		if err != nil {
			return filter, domain.ErrInvalidInput
		}
		filter.StartDate = &t
	}
	if in.EndDate != "" {
		t, err := time.Parse("2006-01-02", in.EndDate)
		if err != nil {
			return filter, domain.ErrInvalidInput
		}
		// Fin de día inclusivo
		end := t.Add(24*time.Hour - time.Nanosecond)
		filter.EndDate = &end
	}
	return filter, nil
}
