package sales_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/zyck/property-admin/internal/domain"
	"github.com/zyck/property-admin/internal/domain/entity"
	"github.com/zyck/property-admin/internal/domain/invoice"
	"github.com/zyck/property-admin/internal/domain/repository"
)

// ── Fakes en memoria ──────────────────────────────────────────────────────────

type memStore struct {
	mu    sync.Mutex
	users map[string]*entity.User
	sales []*entity.Sale
}

func newMemStore() *memStore {
	return &memStore{users: map[string]*entity.User{}}
}

type memUsers struct{ s *memStore }

func (r memUsers) Create(_ context.Context, u *entity.User) error {
	for _, x := range r.s.users {
		if x.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r memUsers) GetAdminByEmail(context.Context, string) (*entity.User, error) { return nil, nil }

func (r memUsers) ListNonAdminCreatedBetween(context.Context, time.Time, time.Time) ([]*entity.User, error) {
	return nil, nil
}

func (r memUsers) SetActive(context.Context, string, bool) error   { return nil }
func (r memUsers) Delete(context.Context, string) error            { return nil }
func (r memUsers) UpsertAdmin(context.Context, *entity.User) error { return nil }

type memSales struct{ s *memStore }

func (r memSales) Create(_ context.Context, sale *entity.Sale) error {
	for _, x := range r.s.sales {
		if x.InvoiceNo == sale.InvoiceNo {
			return domain.ErrDuplicate
		}
	}
	cp := *sale
	r.s.sales = append(r.s.sales, &cp)
	return nil
}

func (r memSales) GetByInvoiceNo(_ context.Context, n string) (*entity.SaleWithUser, error) {
	for _, x := range r.s.sales {
		if x.InvoiceNo == n {
			u := r.s.users[x.UserID]
			return &entity.SaleWithUser{Sale: *x, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}, nil
		}
	}
	return nil, nil
}

func (r memSales) ListWithUsers(_ context.Context, from, to *time.Time) ([]entity.SaleWithUser, error) {
	out := []entity.SaleWithUser{}
	for _, x := range r.s.sales {
		if from != nil && (x.CreatedAt.Before(*from) || x.CreatedAt.After(*to)) {
			continue
		}
		u := r.s.users[x.UserID]
		out = append(out, entity.SaleWithUser{Sale: *x, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email, PhoneNumber: u.PhoneNumber})
	}
	return out, nil
}

// memTx aplica los cambios sobre una copia y los confirma solo si fn no falla.
type memTx struct{ s *memStore }

func (t memTx) RunSales(_ context.Context, fn func(repository.UserRepository, repository.SaleRepository) error) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	work := &memStore{users: map[string]*entity.User{}, sales: append([]*entity.Sale(nil), t.s.sales...)}
	for k, v := range t.s.users {
		work.users[k] = v
	}
	if err := fn(memUsers{work}, memSales{work}); err != nil {
		return err
	}
	t.s.users, t.s.sales = work.users, work.sales
	return nil
}

type seqNumbers struct {
	list []string
	i    int
}

func (g *seqNumbers) Next() (string, error) {
	n := g.list[g.i%len(g.list)]
	g.i++
	return n, nil
}

type countingInvalidator struct{ n int }

func (c *countingInvalidator) Bump(context.Context) error { c.n++; return nil }

type failingInvalidator struct{}

func (failingInvalidator) Bump(context.Context) error { return errors.New("redis caído") }

type capturePDF struct {
	doc    invoice.Document
	issuer invoice.Issuer
}

func (c *capturePDF) GenerateInvoicePDF(_ context.Context, doc invoice.Document, issuer invoice.Issuer) ([]byte, error) {
	c.doc, c.issuer = doc, issuer
	return []byte("%PDF-fake"), nil
}

// countingSales cuenta las lecturas de ListWithUsers.
type countingSales struct {
	memSales
	calls *int
}

func (r countingSales) ListWithUsers(ctx context.Context, from, to *time.Time) ([]entity.SaleWithUser, error) {
	*r.calls++
	return r.memSales.ListWithUsers(ctx, from, to)
}
