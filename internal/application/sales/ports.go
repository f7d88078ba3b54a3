package sales

import (
	"context"

	"github.com/grifosol/grifo-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la venta y su crédito o pago
// se persistan todo-o-nada.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		creditRepo repository.CreditRepository,
		paymentRepo repository.PaymentRepository,
		methodRepo repository.PaymentMethodRepository,
		nozzleRepo repository.NozzleRepository,
	) error) error
}
