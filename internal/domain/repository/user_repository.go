package repository

import (
	"context"
	"time"

	"github.com/zyck/property-admin/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// GetBy* devuelven (nil, nil) si no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetAdminByEmail(ctx context.Context, email string) (*entity.User, error)
	// ListNonAdminCreatedBetween usuarios no administradores con created_at en [from, to].
	ListNonAdminCreatedBetween(ctx context.Context, from, to time.Time) ([]*entity.User, error)
	// SetActive cambia el flag is_active. Devuelve domain.ErrNotFound si el id no existe.
	SetActive(ctx context.Context, id string, active bool) error
	// Delete elimina el usuario (ventas y propiedades caen en cascada). domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id string) error
	// UpsertAdmin crea o actualiza un administrador por email (seed).
	UpsertAdmin(ctx context.Context, user *entity.User) error
}
