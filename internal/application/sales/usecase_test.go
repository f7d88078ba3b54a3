package sales

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grifosol/grifo-api/internal/application/dto"
	"github.com/grifosol/grifo-api/internal/domain"
	"github.com/grifosol/grifo-api/internal/domain/entity"
	"github.com/grifosol/grifo-api/internal/domain/pricing"
)

// Miércoles 10:00, fuera de horas pico y de madrugada.
var testNow = time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func seedStore() *memStore {
	store := newMemStore()
	store.methods = []*entity.PaymentMethod{
		{PaymentMethodID: 1, MethodName: "Efectivo", SettlementKind: entity.SettlementImmediate, IsActive: true},
		{PaymentMethodID: 2, MethodName: "Crédito", SettlementKind: entity.SettlementDeferred, IsActive: true},
		{PaymentMethodID: 3, MethodName: "Yape", IsActive: true}, // dato legado sin settlement_kind
	}
	store.nozzles[5] = &entity.Nozzle{NozzleID: 5, ProductID: 1, TankID: 1}
	store.nextID = 100
	return store
}

func newTestUseCase(store *memStore) *UseCase {
	uc := NewUseCase(
		&memTx{store: store},
		&memSaleRepo{store: store},
		&memMethodRepo{store: store},
		pricing.DefaultRules(),
	)
	uc.now = func() time.Time { return testNow }
	return uc
}

func int64ptr(v int64) *int64 { return &v }

func TestPostSaleCashCreatesPayment(t *testing.T) {
	store := seedStore()
	uc := newTestUseCase(store)

	sale, err := uc.PostSale(context.Background(), dto.CreateSaleRequest{
		UserID:          10,
		NozzleID:        5,
		TotalAmount:     dec("100.00"),
		FinalAmount:     dec("100.00"),
		PaymentMethodID: 1,
	})
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Equal(t, entity.SaleStatusCompleted, sale.Status)
	assert.True(t, sale.FinalAmount.Equal(dec("100.00")))

	require.Len(t, store.payments, 1)
	p := store.payments[0]
	assert.Equal(t, entity.PaymentTypeCash, p.PaymentType)
	assert.Equal(t, entity.PaymentStatusCompleted, p.Status)
	assert.True(t, p.Amount.Equal(dec("100.00")))
	require.NotNil(t, p.SaleID)
	assert.Equal(t, sale.SaleID, *p.SaleID)
	assert.Equal(t, "Pago automático", p.Notes)
	assert.Empty(t, store.credits)
}

func TestPostSaleCreditUsesGrossFromNotes(t *testing.T) {
	store := seedStore()
	uc := newTestUseCase(store)

	sale, err := uc.PostSale(context.Background(), dto.CreateSaleRequest{
		ClientID:        int64ptr(7),
		UserID:          10,
		NozzleID:        5,
		TotalAmount:     dec("100.00"),
		FinalAmount:     dec("100.00"),
		PaymentMethodID: 2,
		Notes:           "venta a crédito pagado_bruto=118.00",
	})
	require.NoError(t, err)

	require.Len(t, store.credits, 1)
	c := store.credits[0]
	assert.Equal(t, sale.SaleID, c.SaleID)
	assert.Equal(t, int64(7), c.ClientID)
	assert.True(t, c.CreditAmount.Equal(dec("118.00")), "bruto desde notes, no el neto")
	assert.True(t, c.AmountPaid.IsZero())
	assert.Equal(t, entity.CreditStatusPending, c.Status)
	assert.Empty(t, store.payments, "una venta a crédito no genera pago inmediato")
}

func TestPostSaleStructuredGrossBeatsNotes(t *testing.T) {
	store := seedStore()
	uc := newTestUseCase(store)

	gross := dec("118.00")
	_, err := uc.PostSale(context.Background(), dto.CreateSaleRequest{
		ClientID:        int64ptr(7),
		UserID:          10,
		NozzleID:        5,
		FinalAmount:     dec("100.00"),
		GrossAmount:     &gross,
		PaymentMethodID: 2,
		Notes:           "pagado_bruto=999.99",
	})
	require.NoError(t, err)
	require.Len(t, store.credits, 1)
	assert.True(t, store.credits[0].CreditAmount.Equal(dec("118.00")))
}

func TestPostSaleCreditDefaultDueDate(t *testing.T) {
	store := seedStore()
	uc := newTestUseCase(store)

	_, err := uc.PostSale(context.Background(), dto.CreateSaleRequest{
		ClientID:        int64ptr(7),
		UserID:          10,
		NozzleID:        5,
		FinalAmount:     dec("50.00"),
		PaymentMethodID: 2,
	})
	require.NoError(t, err)
	require.Len(t, store.credits, 1)
	assert.Equal(t, testNow.AddDate(0, 0, defaultCreditTermDays), store.credits[0].DueDate)
}

func TestPostSaleCreditRequiresClient(t *testing.T) {
	store := seedStore()
	uc := newTestUseCase(store)

	_, err := uc.PostSale(context.Background(), dto.CreateSaleRequest{
		UserID:          10,
		NozzleID:        5,
		FinalAmount:     dec("100.00"),
		PaymentMethodID: 2,
	})
	require.ErrorIs(t, err, domain.ErrCreditRequiresClient)
	assert.Empty(t, store.sales, "la venta no debe quedar persistida si el crédito falla")
	assert.Empty(t, store.credits)
}

func TestPostSaleInvalidPaymentMethod(t *testing.T) {
	store := seedStore()
	uc := newTestUseCase(store)

	_, err := uc.PostSale(context.Background(), dto.CreateSaleRequest{
		UserID:          10,
		NozzleID:        5,
		FinalAmount:     dec("100.00"),
		PaymentMethodID: 99,
	})
	require.ErrorIs(t, err, domain.ErrInvalidPaymentMethod)
	assert.Empty(t, store.sales)
}

func TestPostSaleInvalidNozzleRollsBack(t *testing.T) {
	store := seedStore()
	uc := newTestUseCase(store)

	_, err := uc.PostSale(context.Background(), dto.CreateSaleRequest{
		UserID:          10,
		NozzleID:        404,
		FinalAmount:     dec("100.00"),
		PaymentMethodID: 1,
	})
	require.ErrorIs(t, err, domain.ErrInvalidNozzle)
	assert.Empty(t, store.sales)
	assert.Empty(t, store.payments)
}

func TestPostSaleMethodByNameAccentInsensitive(t *testing.T) {
	store := seedStore()
	uc := newTestUseCase(store)

	// "credito" sin tilde debe resolver el método almacenado como "Crédito".
	_, err := uc.PostSale(context.Background(), dto.CreateSaleRequest{
		ClientID:      int64ptr(7),
		UserID:        10,
		NozzleID:      5,
		FinalAmount:   dec("100.00"),
		PaymentMethod: "credito",
	})
	require.NoError(t, err)
	require.Len(t, store.credits, 1)
}

func TestPostSaleLegacyMethodWithoutSettlementKind(t *testing.T) {
	store := seedStore()
	uc := newTestUseCase(store)

	// "Yape" no declara settlement_kind, su nombre no sugiere crédito y su id
	// no es el sentinel legado: se liquida como pago inmediato.
	_, err := uc.PostSale(context.Background(), dto.CreateSaleRequest{
		UserID:          10,
		NozzleID:        5,
		FinalAmount:     dec("100.00"),
		PaymentMethodID: 3,
	})
	require.NoError(t, err)
	assert.Empty(t, store.credits)
	require.Len(t, store.payments, 1)
}

func TestPostSaleInvalidAmount(t *testing.T) {
	store := seedStore()
	uc := newTestUseCase(store)

	_, err := uc.PostSale(context.Background(), dto.CreateSaleRequest{
		UserID:          10,
		NozzleID:        5,
		TotalAmount:     dec("50.00"),
		DiscountAmount:  dec("60.00"),
		PaymentMethodID: 1,
	})
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestPostSaleComputesAmountFromQuantity(t *testing.T) {
	store := seedStore()
	uc := newTestUseCase(store)

	sale, err := uc.PostSale(context.Background(), dto.CreateSaleRequest{
		UserID:          10,
		NozzleID:        5,
		Quantity:        dec("10.5"),
		UnitPrice:       dec("15.90"),
		PaymentMethodID: 1,
	})
	require.NoError(t, err)
	assert.True(t, sale.TotalAmount.Equal(dec("166.95")))
	assert.True(t, sale.FinalAmount.Equal(dec("166.95")))
}

func TestPostSaleDynamicPricingNightPeak(t *testing.T) {
	store := seedStore()
	uc := newTestUseCase(store)
	// Miércoles 20:00: turno noche (x1.1) y hora pico (x1.08).
	uc.now = func() time.Time { return time.Date(2025, 3, 12, 20, 0, 0, 0, time.UTC) }

	sale, err := uc.PostSale(context.Background(), dto.CreateSaleRequest{
		UserID:              10,
		NozzleID:            5,
		TotalAmount:         dec("100.00"),
		PaymentMethodID:     1,
		Shift:               "night",
		ApplyDynamicPricing: true,
	})
	require.NoError(t, err)
	assert.True(t, sale.FinalAmount.Equal(dec("118.80")), "100 x 1.1 x 1.08 = 118.80, fue %s", sale.FinalAmount)
}

func TestPostSaleDynamicPricingOffByDefault(t *testing.T) {
	store := seedStore()
	uc := newTestUseCase(store)
	uc.now = func() time.Time { return time.Date(2025, 3, 12, 20, 0, 0, 0, time.UTC) }

	sale, err := uc.PostSale(context.Background(), dto.CreateSaleRequest{
		UserID:          10,
		NozzleID:        5,
		TotalAmount:     dec("100.00"),
		FinalAmount:     dec("100.00"),
		PaymentMethodID: 1,
		Shift:           "night",
	})
	require.NoError(t, err)
	assert.True(t, sale.FinalAmount.Equal(dec("100.00")))
}
