package http_test

import (
	"context"
	"sync"
	"time"

	"github.com/zyck/property-admin/internal/domain"
	"github.com/zyck/property-admin/internal/domain/entity"
	"github.com/zyck/property-admin/internal/domain/invoice"
	"github.com/zyck/property-admin/internal/domain/repository"
)

// ── Fakes en memoria ──────────────────────────────────────────────────────────

type memDB struct {
	mu        sync.Mutex
	users     map[string]*entity.User
	sales     []*entity.Sale
	props     map[int64]*entity.Property
	locations []entity.LocationWithProperty
	listings  int64
}

func newMemDB() *memDB {
	return &memDB{users: map[string]*entity.User{}, props: map[int64]*entity.Property{}}
}

func inRange(t time.Time, from, to *time.Time) bool {
	return from == nil || (!t.Before(*from) && !t.After(*to))
}

type memUsers struct{ db *memDB }

func (r memUsers) Create(_ context.Context, u *entity.User) error {
	for _, x := range r.db.users {
		if x.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	cp := *u
	r.db.users[u.ID] = &cp
	return nil
}

func (r memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.db.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r memUsers) GetAdminByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.db.users {
		if u.IsAdmin && u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memUsers) ListNonAdminCreatedBetween(_ context.Context, from, to time.Time) ([]*entity.User, error) {
	out := []*entity.User{}
	for _, u := range r.db.users {
		if !u.IsAdmin && inRange(u.CreatedAt, &from, &to) {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r memUsers) SetActive(_ context.Context, id string, active bool) error {
	u, ok := r.db.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.IsActive = active
	return nil
}

func (r memUsers) Delete(_ context.Context, id string) error {
	if _, ok := r.db.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.db.users, id)
	return nil
}

func (r memUsers) UpsertAdmin(_ context.Context, u *entity.User) error {
	cp := *u
	r.db.users[u.ID] = &cp
	return nil
}

type memSales struct{ db *memDB }

func (r memSales) Create(_ context.Context, s *entity.Sale) error {
	for _, x := range r.db.sales {
		if x.InvoiceNo == s.InvoiceNo {
			return domain.ErrDuplicate
		}
	}
	cp := *s
	r.db.sales = append(r.db.sales, &cp)
	return nil
}

func (r memSales) withUser(s *entity.Sale) entity.SaleWithUser {
	row := entity.SaleWithUser{Sale: *s}
	if u, ok := r.db.users[s.UserID]; ok {
		row.FirstName, row.LastName, row.Email, row.PhoneNumber = u.FirstName, u.LastName, u.Email, u.PhoneNumber
	}
	return row
}

func (r memSales) GetByInvoiceNo(_ context.Context, n string) (*entity.SaleWithUser, error) {
	for _, s := range r.db.sales {
		if s.InvoiceNo == n {
			row := r.withUser(s)
			return &row, nil
		}
	}
	return nil, nil
}

func (r memSales) ListWithUsers(_ context.Context, from, to *time.Time) ([]entity.SaleWithUser, error) {
	out := []entity.SaleWithUser{}
	for _, s := range r.db.sales {
		if inRange(s.CreatedAt, from, to) {
			out = append(out, r.withUser(s))
		}
	}
	return out, nil
}

type memTx struct{ db *memDB }

func (t memTx) RunSales(_ context.Context, fn func(repository.UserRepository, repository.SaleRepository) error) error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	return fn(memUsers{t.db}, memSales{t.db})
}

type memStats struct{ db *memDB }

func (s memStats) CountUsers(_ context.Context, from, to *time.Time) (int64, error) {
	var n int64
	for _, u := range s.db.users {
		if !u.IsAdmin && inRange(u.CreatedAt, from, to) {
			n++
		}
	}
	return n, nil
}

func (s memStats) CountProperties(context.Context, *time.Time, *time.Time) (int64, error) {
	return s.db.listings, nil
}

func (s memStats) ListUserDetails(_ context.Context, from, to time.Time) ([]repository.UserDetail, error) {
	out := []repository.UserDetail{}
	for _, u := range s.db.users {
		if !u.IsAdmin && inRange(u.CreatedAt, &from, &to) {
			out = append(out, repository.UserDetail{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email, CreatedAt: u.CreatedAt})
		}
	}
	return out, nil
}

type memProps struct{ db *memDB }

func (r memProps) ListByUser(_ context.Context, userID string) ([]*entity.Property, error) {
	out := []*entity.Property{}
	for _, p := range r.db.props {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r memProps) Delete(_ context.Context, id int64) error {
	if _, ok := r.db.props[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.db.props, id)
	return nil
}

func (r memProps) ListCreatedBetween(_ context.Context, from, to time.Time) ([]entity.LocationWithProperty, error) {
	out := []entity.LocationWithProperty{}
	for _, l := range r.db.locations {
		if !l.CreatedAt.Before(from) && l.CreatedAt.Before(to) {
			out = append(out, l)
		}
	}
	return out, nil
}

type fixedNumbers struct{ n string }

func (f fixedNumbers) Next() (string, error) { return f.n, nil }

type fakePDF struct{}

func (fakePDF) GenerateInvoicePDF(context.Context, invoice.Document, invoice.Issuer) ([]byte, error) {
	return []byte("%PDF-1.4 fake"), nil
}
