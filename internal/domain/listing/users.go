package listing

import (
	"errors"
	"sort"
	"strings"

	"github.com/zyck/property-admin/internal/domain/entity"
)

// ErrUnknownUserSort campo de orden de usuarios no soportado.
var ErrUnknownUserSort = errors.New("listing: campo de orden de usuarios desconocido")

// Campos ordenables de la tabla de usuarios.
const (
	UserSortCreatedAt = "createdAt"
	UserSortFirstName = "firstName"
	UserSortEmail     = "email"
)

// FilterUsers subcadena sin distinguir mayúsculas en nombre, apellido, email, teléfono y ciudad.
func FilterUsers(users []*entity.User, term string) []*entity.User {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]*entity.User, 0, len(users))
	for _, u := range users {
		if term == "" || userMatches(u, term) {
			out = append(out, u)
		}
	}
	return out
}

func userMatches(u *entity.User, term string) bool {
	for _, v := range [...]string{u.FirstName, u.LastName, u.Email, u.PhoneNumber, u.City} {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}

// SortUsers copia ordenada de forma estable. field vacío = createdAt.
func SortUsers(users []*entity.User, field string, asc bool) ([]*entity.User, error) {
	var less func(a, b *entity.User) bool
	switch field {
	case "", UserSortCreatedAt:
		less = func(a, b *entity.User) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case UserSortFirstName:
		less = func(a, b *entity.User) bool { return strings.ToLower(a.FirstName) < strings.ToLower(b.FirstName) }
	case UserSortEmail:
		less = func(a, b *entity.User) bool { return strings.ToLower(a.Email) < strings.ToLower(b.Email) }
	default:
		return nil, ErrUnknownUserSort
	}
	out := make([]*entity.User, len(users))
	copy(out, users)
	sort.SliceStable(out, func(i, j int) bool {
		if asc {
			return less(out[i], out[j])
		}
		return less(out[j], out[i])
	})
	return out, nil
}
