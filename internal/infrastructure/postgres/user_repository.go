package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/zyck/property-admin/internal/domain"
	"github.com/zyck/property-admin/internal/domain/entity"
	"github.com/zyck/property-admin/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, first_name, last_name, email, password_hash, is_admin, is_active,
	avatar_url, phone_number, city, province, street_address, created_at, updated_at`

// UserRepo implementación del puerto UserRepository (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.FirstName, u.LastName, u.Email, nullIfEmpty(u.PasswordHash), u.IsAdmin, u.IsActive,
		nullIfEmpty(u.AvatarURL), nullIfEmpty(u.PhoneNumber), nullIfEmpty(u.City), nullIfEmpty(u.Province),
		nullIfEmpty(u.StreetAddress), u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// GetAdminByEmail administrador por email (sin distinguir mayúsculas).
func (r *UserRepo) GetAdminByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1) AND is_admin = TRUE LIMIT 1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin by email: %w", err)
	}
	return u, nil
}

// ListNonAdminCreatedBetween usuarios no administradores creados en [from, to].
func (r *UserRepo) ListNonAdminCreatedBetween(ctx context.Context, from, to time.Time) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE is_admin = FALSE AND created_at >= $1 AND created_at <= $2
		ORDER BY created_at DESC`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// SetActive cambia is_active.
func (r *UserRepo) SetActive(ctx context.Context, id string, active bool) error {
	tag, err := r.q.Exec(ctx, `UPDATE users SET is_active = $2, updated_at = NOW() WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("update user status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un usuario por ID; ventas y propiedades se borran en cascada.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpsertAdmin crea o actualiza el administrador identificado por email.
func (r *UserRepo) UpsertAdmin(ctx context.Context, u *entity.User) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO users (id, first_name, last_name, email, password_hash, is_admin, is_active, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, TRUE, $6, $7, $7)
		ON CONFLICT (email) DO UPDATE
		SET first_name = EXCLUDED.first_name,
		    last_name = EXCLUDED.last_name,
		    password_hash = EXCLUDED.password_hash,
		    avatar_url = COALESCE(EXCLUDED.avatar_url, users.avatar_url),
		    is_admin = TRUE,
		    updated_at = EXCLUDED.updated_at`,
		u.ID, u.FirstName, u.LastName, u.Email, nullIfEmpty(u.PasswordHash), nullIfEmpty(u.AvatarURL), u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert admin: %w", err)
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		u                                           entity.User
		hash, avatar, phone, city, province, street *string
	)
	if err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &hash, &u.IsAdmin, &u.IsActive,
		&avatar, &phone, &city, &province, &street, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	u.PasswordHash = derefString(hash)
	u.AvatarURL = derefString(avatar)
	u.PhoneNumber = derefString(phone)
	u.City = derefString(city)
	u.Province = derefString(province)
	u.StreetAddress = derefString(street)
	return &u, nil
}
