package credits

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/grifosol/grifo-api/internal/application/dto"
	"github.com/grifosol/grifo-api/internal/domain"
	"github.com/grifosol/grifo-api/internal/domain/entity"
	"github.com/grifosol/grifo-api/internal/domain/repository"
)

// UseCase administra el libro de créditos: consultas de deuda y registro
// transaccional de abonos.
type UseCase struct {
	txRunner   TxRunner
	creditRepo repository.CreditRepository
	now        func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, creditRepo repository.CreditRepository) *UseCase {
	return &UseCase{
		txRunner:   txRunner,
		creditRepo: creditRepo,
		now:        time.Now,
	}
}

// AddPayment registra un abono contra un crédito. El crédito se relee bajo
// bloqueo de fila, se rechaza cualquier monto que exceda el saldo, y el
// crédito pasa a "paid" cuando el acumulado iguala la deuda. Pago y saldo se
// escriben en la misma transacción.
func (uc *UseCase) AddPayment(ctx context.Context, creditID int64, in dto.AddCreditPaymentRequest) (*entity.Credit, error) {
	amount := in.Amount
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	var credit *entity.Credit
	err := uc.txRunner.RunCredit(ctx, func(
		creditRepo repository.CreditRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		var err error
		credit, err = creditRepo.GetForUpdate(creditID)
		if err != nil {
			return err
		}
		if credit == nil {
			return fmt.Errorf("%w: crédito %d", domain.ErrNotFound, creditID)
		}

		if amount.GreaterThan(credit.Balance()) {
			return fmt.Errorf("%w: el abono de %s excede el saldo pendiente de %s",
				domain.ErrOverpayment, amount.StringFixed(2), credit.Balance().StringFixed(2))
		}

		now := uc.now()
		reference := in.Reference
		if reference == "" {
			// Referencia autogenerada para conciliación.
			reference = uuid.NewString()
		}
		var methodID int64
		if in.PaymentMethodID != nil {
			methodID = *in.PaymentMethodID
		}
		payment := &entity.Payment{
			UserID:           in.UserID,
			CreditID:         &credit.CreditID,
			PaymentTimestamp: now,
			Amount:           amount,
			PaymentMethodID:  methodID,
			Notes:            "Abono crédito ref " + reference,
			PaymentType:      entity.PaymentTypeCredit,
			Status:           entity.PaymentStatusCompleted,
		}
		if err := paymentRepo.Create(payment); err != nil {
			return err
		}

		credit.AmountPaid = credit.AmountPaid.Add(amount)
		if credit.AmountPaid.GreaterThanOrEqual(credit.CreditAmount) {
			credit.Status = entity.CreditStatusPaid
		}
		credit.UpdatedAt = now
		return creditRepo.Update(credit)
	})
	if err != nil {
		return nil, err
	}
	return credit, nil
}

// FindOne devuelve un crédito o ErrNotFound.
func (uc *UseCase) FindOne(ctx context.Context, id int64) (*entity.Credit, error) {
	credit, err := uc.creditRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if credit == nil {
		return nil, fmt.Errorf("%w: crédito %d", domain.ErrNotFound, id)
	}
	return credit, nil
}

// FindAll lista créditos filtrando opcionalmente por cliente y estado.
func (uc *UseCase) FindAll(ctx context.Context, clientID *int64, status string) ([]*entity.Credit, error) {
	return uc.creditRepo.List(repository.CreditFilter{
		ClientID: clientID,
		Status:   status,
	}, uc.now())
}

// GetOverdue lista los créditos pendientes cuya fecha de vencimiento ya pasó.
func (uc *UseCase) GetOverdue(ctx context.Context) ([]*entity.Credit, error) {
	return uc.creditRepo.ListOverdue(uc.now())
}

// Dashboard devuelve los contadores agregados del libro de créditos.
func (uc *UseCase) Dashboard(ctx context.Context) (*dto.CreditsDashboardResponse, error) {
	pending, err := uc.creditRepo.CountByStatus(entity.CreditStatusPending)
	if err != nil {
		return nil, err
	}
	paid, err := uc.creditRepo.CountByStatus(entity.CreditStatusPaid)
	if err != nil {
		return nil, err
	}
	overdue, err := uc.creditRepo.CountOverdue(uc.now())
	if err != nil {
		return nil, err
	}
	return &dto.CreditsDashboardResponse{
		Total:   pending,
		Overdue: overdue,
		Paid:    paid,
	}, nil
}
