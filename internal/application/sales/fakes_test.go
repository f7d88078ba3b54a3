package sales

import (
	"context"
	"sort"
	"time"

	"github.com/grifosol/grifo-api/internal/domain/entity"
	"github.com/grifosol/grifo-api/internal/domain/repository"
)

// memStore estado compartido de los repositorios en memoria usados en tests.
type memStore struct {
	sales    []*entity.Sale
	credits  []*entity.Credit
	payments []*entity.Payment
	methods  []*entity.PaymentMethod
	nozzles  map[int64]*entity.Nozzle
	nextID   int64
}

func newMemStore() *memStore {
	return &memStore{nozzles: map[int64]*entity.Nozzle{}, nextID: 1}
}

func (s *memStore) id() int64 {
	id := s.nextID
	s.nextID++
	return id
}

// clone copia el estado mutable; métodos y boquillas son de solo lectura y se
// comparten.
func (s *memStore) clone() *memStore {
	c := &memStore{methods: s.methods, nozzles: s.nozzles, nextID: s.nextID}
	for _, v := range s.sales {
		cp := *v
		c.sales = append(c.sales, &cp)
	}
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

func (s *memStore) replaceWith(c *memStore) {
	s.sales = c.sales
	s.credits = c.credits
	s.payments = c.payments
	s.nextID = c.nextID
}

// memTx simula la semántica transaccional: la función trabaja sobre una copia
// y solo un retorno sin error la confirma.
type memTx struct {
	store *memStore
}

func (t *memTx) RunSale(_ context.Context, fn func(
	saleRepo repository.SaleRepository,
	creditRepo repository.CreditRepository,
	paymentRepo repository.PaymentRepository,
	methodRepo repository.PaymentMethodRepository,
	nozzleRepo repository.NozzleRepository,
) error) error {
	staging := t.store.clone()
	err := fn(
		&memSaleRepo{store: staging},
		&memCreditRepo{store: staging},
		&memPaymentRepo{store: staging},
		&memMethodRepo{store: staging},
		&memNozzleRepo{store: staging},
	)
	if err != nil {
		return err
	}
	t.store.replaceWith(staging)
	return nil
}

type memSaleRepo struct{ store *memStore }

func (r *memSaleRepo) Create(sale *entity.Sale) error {
	sale.SaleID = r.store.id()
	cp := *sale
	r.store.sales = append(r.store.sales, &cp)
	return nil
}

func (r *memSaleRepo) GetByID(id int64) (*entity.Sale, error) {
	for _, s := range r.store.sales {
		if s.SaleID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memSaleRepo) Update(sale *entity.Sale) error {
	for i, s := range r.store.sales {
		if s.SaleID == sale.SaleID {
			cp := *sale
			r.store.sales[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *memSaleRepo) List(filter repository.SaleFilter) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.store.sales {
		if filter.StartDate != nil && s.SaleTimestamp.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && s.SaleTimestamp.After(*filter.EndDate) {
			continue
		}
		if filter.ClientID != nil && (s.ClientID == nil || *s.ClientID != *filter.ClientID) {
			continue
		}
		if filter.EmployeeID != nil && (s.EmployeeID == nil || *s.EmployeeID != *filter.EmployeeID) {
			continue
		}
		if filter.PaymentMethodID != nil && s.PaymentMethodID != *filter.PaymentMethodID {
			continue
		}
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SaleTimestamp.After(out[j].SaleTimestamp)
	})
	return out, nil
}

func (r *memSaleRepo) ListRecent(limit int) ([]*entity.Sale, error) {
	out, _ := r.List(repository.SaleFilter{})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memCreditRepo struct{ store *memStore }

func (r *memCreditRepo) Create(credit *entity.Credit) error {
	credit.CreditID = r.store.id()
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
		cp := *c
		out = append(out, &cp)
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
	payment.PaymentID = r.store.id()
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
	sort.Slice(out, func(i, j int) bool {
		return out[i].PaymentTimestamp.After(out[j].PaymentTimestamp)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memPaymentRepo) ListByMethod(paymentMethodID int64) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.store.payments {
		if p.PaymentMethodID == paymentMethodID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPaymentRepo) ListByDateRange(from, to time.Time) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.store.payments {
		if !p.PaymentTimestamp.Before(from) && !p.PaymentTimestamp.After(to) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPaymentRepo) ConciliationByDay(day time.Time) ([]repository.MethodTotal, error) {
	return nil, nil
}

type memMethodRepo struct{ store *memStore }

func (r *memMethodRepo) GetByID(id int64) (*entity.PaymentMethod, error) {
	for _, m := range r.store.methods {
		if m.PaymentMethodID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *memMethodRepo) GetByName(normalizedName string) (*entity.PaymentMethod, error) {
	for _, m := range r.store.methods {
		if entity.NormalizeMethodName(m.MethodName) == normalizedName {
			return m, nil
		}
	}
	return nil, nil
}

func (r *memMethodRepo) ListActive() ([]*entity.PaymentMethod, error) {
	var out []*entity.PaymentMethod
	for _, m := range r.store.methods {
		if m.IsActive {
			out = append(out, m)
		}
	}
	return out, nil
}

type memNozzleRepo struct{ store *memStore }

func (r *memNozzleRepo) GetByID(id int64) (*entity.Nozzle, error) {
	return r.store.nozzles[id], nil
}
