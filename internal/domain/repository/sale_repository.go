package repository

import (
	"context"
	"time"

	"github.com/zyck/property-admin/internal/domain/entity"
)

// SaleRepository persistencia de ventas. Solo alta y lectura.
type SaleRepository interface {
	// Create inserta la venta. Devuelve domain.ErrDuplicate si el invoice_no ya existe.
	Create(ctx context.Context, sale *entity.Sale) error
	GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.SaleWithUser, error)
	// ListWithUsers ventas con datos del usuario; from/to nil = sin filtro de fechas.
	ListWithUsers(ctx context.Context, from, to *time.Time) ([]entity.SaleWithUser, error)
}
