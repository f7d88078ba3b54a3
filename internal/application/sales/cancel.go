package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/grifosol/grifo-api/internal/domain"
	"github.com/grifosol/grifo-api/internal/domain/entity"
)

// Ventana de anulación para vendedores, contada desde la creación de la venta.
const sellerCancelWindow = 2 * time.Hour

// cancelDecision resultado de evaluar la política de anulación.
type cancelDecision struct {
	allowed bool
	reason  string
}

// cancelPolicy predicado por rol sobre (venta, actor, ahora).
type cancelPolicy func(sale *entity.Sale, actingUserID int64, now time.Time) cancelDecision

// cancelPolicies tabla declarativa rol -> política. Un rol ausente se
// resuelve con denyAll.
var cancelPolicies = map[string]cancelPolicy{
	entity.RoleSuperadmin: func(*entity.Sale, int64, time.Time) cancelDecision {
		return cancelDecision{allowed: true}
	},
	entity.RoleAdmin: func(sale *entity.Sale, _ int64, now time.Time) cancelDecision {
		if !sameCalendarDay(sale.CreatedAt, now) {
			return cancelDecision{reason: "Los administradores solo pueden anular ventas del día actual"}
		}
		return cancelDecision{allowed: true}
	},
	entity.RoleSeller: func(sale *entity.Sale, actingUserID int64, now time.Time) cancelDecision {
		if sale.UserID != actingUserID {
			return cancelDecision{reason: "Los vendedores solo pueden anular sus propias ventas"}
		}
		if !sameCalendarDay(sale.CreatedAt, now) {
			return cancelDecision{reason: "Los vendedores solo pueden anular ventas del día actual"}
		}
		if now.Sub(sale.CreatedAt) > sellerCancelWindow {
			return cancelDecision{reason: "No se pueden anular ventas después de 2 horas"}
		}
		return cancelDecision{allowed: true}
	},
}

func denyAll(*entity.Sale, int64, time.Time) cancelDecision {
	return cancelDecision{reason: "Sin permisos para anular ventas"}
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// CancelSale anula una venta según la política por rol. No revierte el
// crédito, el pago ni los movimientos de stock asociados; la anulación
// contable se maneja aparte.
func (uc *UseCase) CancelSale(ctx context.Context, saleID, actingUserID int64, reason, role string) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, fmt.Errorf("%w: venta %d", domain.ErrNotFound, saleID)
	}
	if sale.Status == entity.SaleStatusCancelled {
		return nil, domain.ErrAlreadyCancelled
	}

	now := uc.now()
	policy, ok := cancelPolicies[role]
	if !ok {
		policy = denyAll
	}
	decision := policy(sale, actingUserID, now)
	if !decision.allowed {
		return nil, fmt.Errorf("%w: %s", domain.ErrForbidden, decision.reason)
	}

	// Auditoría no destructiva: se conservan las notas previas.
	sale.Status = entity.SaleStatusCancelled
	sale.Notes = sale.Notes + fmt.Sprintf("\n[ANULADA] %s - Usuario: %d - Motivo: %s",
		now.Format(time.RFC3339), actingUserID, reason)
	sale.UpdatedAt = now

	if err := uc.saleRepo.Update(sale); err != nil {
		return nil, err
	}
	return sale, nil
}
