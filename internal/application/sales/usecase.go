package sales

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/grifosol/grifo-api/internal/application/dto"
	"github.com/grifosol/grifo-api/internal/domain"
	"github.com/grifosol/grifo-api/internal/domain/entity"
	"github.com/grifosol/grifo-api/internal/domain/pricing"
	"github.com/grifosol/grifo-api/internal/domain/repository"
)

// legacyCreditMethodID: el frontend legado envía id=2 para Crédito; se
// mantiene como fallback cuando el método no declara settlement_kind.
const legacyCreditMethodID = 2

// Sinónimos de "crédito" en el nombre del método (comparados ya normalizados).
var creditNameHints = []string{"credito", "credit"}

// Plazo por defecto de un crédito cuando la venta no trae due_date.
const defaultCreditTermDays = 30

// UseCase registra ventas de forma transaccional: venta + crédito (deuda) o
// venta + pago inmediato, todo-o-nada.
type UseCase struct {
	txRunner   TxRunner
	saleRepo   repository.SaleRepository
	methodRepo repository.PaymentMethodRepository
	rules      pricing.Rules
	now        func() time.Time
}

// NewUseCase construye el caso de uso. Las reglas de precios dinámicos se
// inyectan como valor inmutable.
func NewUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	methodRepo repository.PaymentMethodRepository,
	rules pricing.Rules,
) *UseCase {
	return &UseCase{
		txRunner:   txRunner,
		saleRepo:   saleRepo,
		methodRepo: methodRepo,
		rules:      rules,
		now:        time.Now,
	}
}

// PostSale valida la petición, resuelve el método de pago (por id o por
// nombre), aplica precios dinámicos si se pidió y persiste la venta junto con
// su crédito o su pago dentro de una sola transacción.
func (uc *UseCase) PostSale(ctx context.Context, in dto.CreateSaleRequest) (*entity.Sale, error) {
	if in.UserID == 0 || in.NozzleID == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()

	// Montos: usa lo que viene del cliente; si falta, calcula.
	total := in.TotalAmount
	if total.IsZero() {
		total = in.UnitPrice.Mul(in.Quantity)
	}
	discount := in.DiscountAmount
	if discount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	final := in.FinalAmount
	if final.IsZero() {
		final = total.Sub(discount)
	}

	if in.ApplyDynamicPricing {
		res := pricing.Calculate(uc.rules, total, in.Shift, now)
		total = res.FinalPrice
		final = total.Sub(discount)
	}

	if final.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}
	total = total.Round(2)
	final = final.Round(2)

	// due_date se valida antes de abrir la transacción.
	dueDate := now.AddDate(0, 0, defaultCreditTermDays)
	if in.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", in.DueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		dueDate = parsed
	}

	var sale *entity.Sale
	err := uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		creditRepo repository.CreditRepository,
		paymentRepo repository.PaymentRepository,
		methodRepo repository.PaymentMethodRepository,
		nozzleRepo repository.NozzleRepository,
	) error {
		// 1) Resolver método de pago por id o por nombre
		pm, err := resolvePaymentMethod(methodRepo, in.PaymentMethodID, in.PaymentMethod)
		if err != nil {
			return err
		}
		if pm == nil {
			return domain.ErrInvalidPaymentMethod
		}

		// 2) Validar boquilla
		nozzle, err := nozzleRepo.GetByID(in.NozzleID)
		if err != nil {
			return err
		}
		if nozzle == nil {
			return domain.ErrInvalidNozzle
		}

		// 3) Crear venta
		sale = &entity.Sale{
			ClientID:        in.ClientID,
			UserID:          in.UserID,
			EmployeeID:      in.EmployeeID,
			NozzleID:        in.NozzleID,
			SaleTimestamp:   now,
			TotalAmount:     total,
			DiscountAmount:  discount,
			FinalAmount:     final,
			PaymentMethodID: pm.PaymentMethodID,
			Status:          entity.SaleStatusCompleted,
			Shift:           in.Shift,
			Notes:           in.Notes,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		// 4) Monto bruto (con IGV) para el crédito o el pago derivado
		gross := resolveGrossAmount(in.GrossAmount, in.Notes, final)

		// 5) ¿Es venta a crédito? -> deuda en credits; si no -> pago directo
		if isCreditSale(pm, in.PaymentMethod, in.PaymentMethodID) {
			if in.ClientID == nil {
				return domain.ErrCreditRequiresClient
			}
			credit := &entity.Credit{
				ClientID:     *in.ClientID,
				SaleID:       sale.SaleID,
				CreditAmount: gross,
				AmountPaid:   decimal.Zero,
				DueDate:      dueDate,
				Status:       entity.CreditStatusPending,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			return creditRepo.Create(credit)
		}

		userID := in.UserID
		payment := &entity.Payment{
			UserID:           &userID,
			SaleID:           &sale.SaleID,
			PaymentTimestamp: now,
			Amount:           gross,
			PaymentMethodID:  pm.PaymentMethodID,
			Notes:            "Pago automático",
			PaymentType:      entity.PaymentTypeCash,
			Status:           entity.PaymentStatusCompleted,
		}
		return paymentRepo.Create(payment)
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// resolvePaymentMethod busca por id y luego por nombre normalizado. Como los
// nombres almacenados pueden traer tildes ("Crédito"), si la búsqueda directa
// falla se recorren los métodos activos comparando nombres normalizados.
func resolvePaymentMethod(methodRepo repository.PaymentMethodRepository, id int64, name string) (*entity.PaymentMethod, error) {
	if id != 0 {
		pm, err := methodRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if pm != nil {
			return pm, nil
		}
	}
	if name == "" {
		return nil, nil
	}
	normalized := entity.NormalizeMethodName(name)
	pm, err := methodRepo.GetByName(normalized)
	if err != nil {
		return nil, err
	}
	if pm != nil {
		return pm, nil
	}
	active, err := methodRepo.ListActive()
	if err != nil {
		return nil, err
	}
	for _, m := range active {
		if entity.NormalizeMethodName(m.MethodName) == normalized {
			return m, nil
		}
	}
	return nil, nil
}

// isCreditSale decide la rama crédito. El atributo settlement_kind del método
// manda; para datos legados sin el atributo se conserva la regla original:
// el nombre contiene un sinónimo de crédito, o el id es el sentinel legado.
func isCreditSale(pm *entity.PaymentMethod, requestedName string, requestedID int64) bool {
	if pm.SettlementKind != "" {
		return pm.SettlementKind == entity.SettlementDeferred
	}
	fromRequest := entity.NormalizeMethodName(requestedName)
	fromDB := entity.NormalizeMethodName(pm.MethodName)
	for _, hint := range creditNameHints {
		if (fromRequest != "" && strings.Contains(fromRequest, hint)) || strings.Contains(fromDB, hint) {
			return true
		}
	}
	return requestedID == legacyCreditMethodID
}
