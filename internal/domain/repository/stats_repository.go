package repository

import (
	"context"
	"time"
)

// UserDetail fila resumida de usuario para el listado del dashboard.
type UserDetail struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	CreatedAt time.Time
}

// StatsRepository conteos del dashboard. Read-only.
// Los rangos son inclusivos; from/to nil = totales globales.
type StatsRepository interface {
	CountUsers(ctx context.Context, from, to *time.Time) (int64, error)
	CountProperties(ctx context.Context, from, to *time.Time) (int64, error)
	ListUserDetails(ctx context.Context, from, to time.Time) ([]UserDetail, error)
}
