package sales

import (
	"context"

	"github.com/zyck/property-admin/internal/domain/entity"
	"github.com/zyck/property-admin/internal/domain/invoice"
	"github.com/zyck/property-admin/internal/domain/repository"
)

// SalesTxRunner ejecuta una función dentro de una transacción con los repos de usuarios y ventas.
type SalesTxRunner interface {
	RunSales(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// NumberGenerator fuente de números de factura.
type NumberGenerator interface {
	Next() (string, error)
}

// InvoicePDFGenerator representación PDF de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, doc invoice.Document, issuer invoice.Issuer) ([]byte, error)
}

// SalesExporter hoja de cálculo con las filas de la tabla de ventas.
type SalesExporter interface {
	ExportSales(ctx context.Context, rows []entity.SaleWithUser) ([]byte, error)
}

// ReportInvalidator invalida los reportes cacheados tras una escritura.
type ReportInvalidator interface {
	Bump(ctx context.Context) error
}
