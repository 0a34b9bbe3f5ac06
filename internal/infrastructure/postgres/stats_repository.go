package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/zyck/property-admin/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo conteos read-only para el dashboard.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el repositorio de conteos.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// CountUsers usuarios (incluye administradores) creados en el rango inclusivo.
func (r *StatsRepo) CountUsers(ctx context.Context, from, to *time.Time) (int64, error) {
	return r.count(ctx, "users", from, to)
}

// CountProperties publicaciones creadas en el rango inclusivo.
func (r *StatsRepo) CountProperties(ctx context.Context, from, to *time.Time) (int64, error) {
	return r.count(ctx, "properties", from, to)
}

// table proviene siempre de una constante interna.
func (r *StatsRepo) count(ctx context.Context, table string, from, to *time.Time) (int64, error) {
	a, b := optionalRange(from, to)
	var n int64
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*) FROM `+table+`
		WHERE ($1::timestamptz IS NULL OR created_at >= $1)
		  AND ($2::timestamptz IS NULL OR created_at <= $2)`, a, b).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// ListUserDetails filas resumidas de los usuarios creados en [from, to].
func (r *StatsRepo) ListUserDetails(ctx context.Context, from, to time.Time) ([]repository.UserDetail, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, first_name, last_name, email, created_at FROM users
		WHERE created_at >= $1 AND created_at <= $2
		ORDER BY created_at`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list user details: %w", err)
	}
	defer rows.Close()

	list := make([]repository.UserDetail, 0)
	for rows.Next() {
		var d repository.UserDetail
		if err := rows.Scan(&d.ID, &d.FirstName, &d.LastName, &d.Email, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user detail: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
