package credits

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
	"github.com/grifosol/grifo-api/internal/domain/repository"
)

var testNow = time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type memStore struct {
	credits  []*entity.Credit
	payments []*entity.Payment
	nextID   int64
}

func (s *memStore) clone() *memStore {
	c := &memStore{nextID: s.nextID}
	for _, v := range s.credits {
		cp := *v
		c.credits = append(c.credits, &cp)
	}
	for _, v := range s.payments {
		cp := *v
		c.payments = append(c.payments, &cp)
	}
	return c
}

type memCreditRepo struct{ store *memStore }

func (r *memCreditRepo) Create(credit *entity.Credit) error {
	r.store.nextID++
	credit.CreditID = r.store.nextID
	cp := *credit
	r.store.credits = append(r.store.credits, &cp)
	return nil
}

func (r *memCreditRepo) GetByID(id int64) (*entity.Credit, error) {
	for _, c := range r.store.credits {
		if c.CreditID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCreditRepo) GetForUpdate(id int64) (*entity.Credit, error) {
	return r.GetByID(id)
}

func (r *memCreditRepo) Update(credit *entity.Credit) error {
	for i, c := range r.store.credits {
		if c.CreditID == credit.CreditID {
			cp := *credit
			r.store.credits[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *memCreditRepo) List(filter repository.CreditFilter, now time.Time) ([]*entity.Credit, error) {
	var out []*entity.Credit
	for _, c := range r.store.credits {
		if filter.ClientID != nil && c.ClientID != *filter.ClientID {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.Overdue && !(c.Status == entity.CreditStatusPending && c.DueDate.Before(now)) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *memCreditRepo) ListOverdue(now time.Time) ([]*entity.Credit, error) {
	return r.List(repository.CreditFilter{Overdue: true}, now)
}

func (r *memCreditRepo) CountByStatus(status string) (int64, error) {
	var n int64
	for _, c := range r.store.credits {
		if c.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *memCreditRepo) CountOverdue(now time.Time) (int64, error) {
	list, _ := r.ListOverdue(now)
	return int64(len(list)), nil
}

type memPaymentRepo struct{ store *memStore }

func (r *memPaymentRepo) Create(payment *entity.Payment) error {
	r.store.nextID++
	payment.PaymentID = r.store.nextID
	cp := *payment
	r.store.payments = append(r.store.payments, &cp)
	return nil
}

func (r *memPaymentRepo) GetByID(id int64) (*entity.Payment, error) {
	for _, p := range r.store.payments {
		if p.PaymentID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memPaymentRepo) ListRecent(limit int) ([]*entity.Payment, error) {
	out := append([]*entity.Payment(nil), r.store.payments...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memPaymentRepo) ListByMethod(int64) ([]*entity.Payment, error)            { return nil, nil }
func (r *memPaymentRepo) ListByDateRange(_, _ time.Time) ([]*entity.Payment, error) { return nil, nil }
func (r *memPaymentRepo) ConciliationByDay(time.Time) ([]repository.MethodTotal, error) {
	return nil, nil
}

type memTx struct{ store *memStore }

func (t *memTx) RunCredit(_ context.Context, fn func(
	creditRepo repository.CreditRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	staging := t.store.clone()
	err := fn(&memCreditRepo{store: staging}, &memPaymentRepo{store: staging})
	if err != nil {
		return err
	}
	*t.store = *staging
	return nil
}

func seedCredit(store *memStore, amount, paid string) *entity.Credit {
	store.nextID++
	c := &entity.Credit{
		CreditID:     store.nextID,
		ClientID:     7,
		SaleID:       100,
		CreditAmount: dec(amount),
		AmountPaid:   dec(paid),
		DueDate:      testNow.AddDate(0, 0, 30),
		Status:       entity.CreditStatusPending,
		CreatedAt:    testNow,
		UpdatedAt:    testNow,
	}
	store.credits = append(store.credits, c)
	return c
}

func newTestUseCase(store *memStore) *UseCase {
	uc := NewUseCase(&memTx{store: store}, &memCreditRepo{store: store})
	uc.now = func() time.Time { return testNow }
	return uc
}

func TestAddPaymentPartial(t *testing.T) {
	store := &memStore{}
	uc := newTestUseCase(store)
	c := seedCredit(store, "118.00", "0")

	updated, err := uc.AddPayment(context.Background(), c.CreditID, dto.AddCreditPaymentRequest{
		Amount: dec("50.00"),
	})
	require.NoError(t, err)
	assert.True(t, updated.AmountPaid.Equal(dec("50.00")))
	assert.True(t, updated.Balance().Equal(dec("68.00")))
	assert.Equal(t, entity.CreditStatusPending, updated.Status)

	require.Len(t, store.payments, 1)
	p := store.payments[0]
	assert.Equal(t, entity.PaymentTypeCredit, p.PaymentType)
	require.NotNil(t, p.CreditID)
	assert.Equal(t, c.CreditID, *p.CreditID)
	assert.Nil(t, p.SaleID)
	assert.NotEmpty(t, p.Notes, "se genera una referencia cuando no se envía")
}

func TestAddPaymentSettlesCredit(t *testing.T) {
	store := &memStore{}
	uc := newTestUseCase(store)
	c := seedCredit(store, "118.00", "68.00")

	updated, err := uc.AddPayment(context.Background(), c.CreditID, dto.AddCreditPaymentRequest{
		Amount:    dec("50.00"),
		Reference: "OP-12345",
	})
	require.NoError(t, err)
	assert.True(t, updated.Balance().IsZero())
	assert.Equal(t, entity.CreditStatusPaid, updated.Status)
	require.Len(t, store.payments, 1)
	assert.Contains(t, store.payments[0].Notes, "OP-12345")
}

func TestAddPaymentOverpaymentRejected(t *testing.T) {
	store := &memStore{}
	uc := newTestUseCase(store)
	c := seedCredit(store, "118.00", "100.00")

	_, err := uc.AddPayment(context.Background(), c.CreditID, dto.AddCreditPaymentRequest{
		Amount: dec("18.01"),
	})
	require.ErrorIs(t, err, domain.ErrOverpayment)

	// Nada quedó persistido: ni el pago ni el saldo.
	assert.Empty(t, store.payments)
	stored, _ := (&memCreditRepo{store: store}).GetByID(c.CreditID)
	assert.True(t, stored.AmountPaid.Equal(dec("100.00")))
	assert.Equal(t, entity.CreditStatusPending, stored.Status)
}

func TestAddPaymentExactBalanceAllowed(t *testing.T) {
	store := &memStore{}
	uc := newTestUseCase(store)
	c := seedCredit(store, "118.00", "100.00")

	updated, err := uc.AddPayment(context.Background(), c.CreditID, dto.AddCreditPaymentRequest{
		Amount: dec("18.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CreditStatusPaid, updated.Status)
}

func TestAddPaymentInvalidAmount(t *testing.T) {
	store := &memStore{}
	uc := newTestUseCase(store)
	c := seedCredit(store, "118.00", "0")

	_, err := uc.AddPayment(context.Background(), c.CreditID, dto.AddCreditPaymentRequest{Amount: decimal.Zero})
	require.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = uc.AddPayment(context.Background(), c.CreditID, dto.AddCreditPaymentRequest{Amount: dec("-5")})
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestAddPaymentCreditNotFound(t *testing.T) {
	store := &memStore{}
	uc := newTestUseCase(store)

	_, err := uc.AddPayment(context.Background(), 404, dto.AddCreditPaymentRequest{Amount: dec("10")})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDashboardCounts(t *testing.T) {
	store := &memStore{}
	uc := newTestUseCase(store)

	seedCredit(store, "100", "0")                       // pendiente, vigente
	overdue := seedCredit(store, "200", "50")           // pendiente, vencido
	overdue.DueDate = testNow.AddDate(0, 0, -1)
	paid := seedCredit(store, "300", "300")
	paid.Status = entity.CreditStatusPaid

	dash, err := uc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), dash.Total)
	assert.Equal(t, int64(1), dash.Overdue)
	assert.Equal(t, int64(1), dash.Paid)
}

func TestFindAllFilters(t *testing.T) {
	store := &memStore{}
	uc := newTestUseCase(store)

	a := seedCredit(store, "100", "0")
	b := seedCredit(store, "200", "200")
	b.Status = entity.CreditStatusPaid
	b.ClientID = 8

	all, err := uc.FindAll(context.Background(), nil, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := uc.FindAll(context.Background(), nil, entity.CreditStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, a.CreditID, pending[0].CreditID)

	client8 := int64(8)
	byClient, err := uc.FindAll(context.Background(), &client8, "")
	require.NoError(t, err)
	require.Len(t, byClient, 1)
	assert.Equal(t, b.CreditID, byClient[0].CreditID)
}
