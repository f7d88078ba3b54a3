package credits

import (
	"context"

	"github.com/grifosol/grifo-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. El abono y la actualización del saldo del
// crédito deben confirmar o revertir juntos.
type TxRunner interface {
	RunCredit(ctx context.Context, fn func(
		creditRepo repository.CreditRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}
