package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/zyck/property-admin/internal/domain"
	"github.com/zyck/property-admin/internal/domain/entity"
	"github.com/zyck/property-admin/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta. Un invoice_no repetido devuelve domain.ErrDuplicate.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO sales (id, invoice_no, property_title, payment_amount, payment_method, payment_gender, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.InvoiceNo, s.PropertyTitle, s.PaymentAmount, s.PaymentMethod, s.PaymentGender, s.UserID, s.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

const saleWithUserSelect = `
	SELECT s.id, s.invoice_no, s.property_title, s.payment_amount, s.payment_method, s.payment_gender,
	       s.user_id, s.created_at, u.first_name, u.last_name, u.email, u.phone_number
	FROM sales s
	JOIN users u ON u.id = s.user_id`

// GetByInvoiceNo venta con usuario por número de factura.
func (r *SaleRepo) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.SaleWithUser, error) {
	s, err := scanSaleWithUser(r.q.QueryRow(ctx, saleWithUserSelect+` WHERE s.invoice_no = $1`, invoiceNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// ListWithUsers ventas con datos del usuario; from/to nil desactivan el filtro.
func (r *SaleRepo) ListWithUsers(ctx context.Context, from, to *time.Time) ([]entity.SaleWithUser, error) {
	a, b := optionalRange(from, to)
	rows, err := r.q.Query(ctx, saleWithUserSelect+`
		WHERE ($1::timestamptz IS NULL OR s.created_at >= $1)
		  AND ($2::timestamptz IS NULL OR s.created_at <= $2)
		ORDER BY s.created_at DESC`, a, b)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	list := make([]entity.SaleWithUser, 0)
	for rows.Next() {
		s, err := scanSaleWithUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, *s)
	}
	return list, rows.Err()
}

func scanSaleWithUser(row pgx.Row) (*entity.SaleWithUser, error) {
	var (
		s     entity.SaleWithUser
		phone *string
	)
	if err := row.Scan(
		&s.ID, &s.InvoiceNo, &s.PropertyTitle, &s.PaymentAmount, &s.PaymentMethod, &s.PaymentGender,
		&s.UserID, &s.CreatedAt, &s.FirstName, &s.LastName, &s.Email, &phone,
	); err != nil {
		return nil, err
	}
	s.PhoneNumber = derefString(phone)
	return &s, nil
}
