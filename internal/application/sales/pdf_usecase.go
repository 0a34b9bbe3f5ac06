package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/zyck/property-admin/internal/application/dto"
	"github.com/zyck/property-admin/internal/domain"
	"github.com/zyck/property-admin/internal/domain/entity"
	"github.com/zyck/property-admin/internal/domain/invoice"
	"github.com/zyck/property-admin/internal/domain/repository"
)

// PDFUseCase genera la factura imprimible desde la venta guardada o desde el formulario.
type PDFUseCase struct {
	saleRepo  repository.SaleRepository
	generator InvoicePDFGenerator
	issuer    invoice.Issuer
	now       func() time.Time
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(saleRepo repository.SaleRepository, generator InvoicePDFGenerator, issuer invoice.Issuer) *PDFUseCase {
	return &PDFUseCase{saleRepo: saleRepo, generator: generator, issuer: issuer, now: time.Now}
}

// FromRecord PDF de una venta persistida.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si el número no existe.
func (uc *PDFUseCase) FromRecord(ctx context.Context, invoiceNo string) ([]byte, string, error) {
	if strings.TrimSpace(invoiceNo) == "" {
		return nil, "", domain.ErrInvalidInput
	}
	s, err := uc.saleRepo.GetByInvoiceNo(ctx, invoiceNo)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener venta: %w", err)
	}
	if s == nil {
		return nil, "", domain.ErrNotFound
	}
	doc := invoice.Document{
		Number:        s.InvoiceNo,
		Date:          s.CreatedAt,
		CustomerName:  (&entity.User{FirstName: s.FirstName, LastName: s.LastName}).FullName(),
		CustomerEmail: s.Email,
		PropertyTitle: s.PropertyTitle,
		PaymentGender: s.PaymentGender,
		PaymentMethod: s.PaymentMethod,
		Amount:        s.PaymentAmount,
	}
	return uc.render(ctx, doc)
}

// FromForm PDF del formulario, sin persistir nada.
func (uc *PDFUseCase) FromForm(ctx context.Context, in dto.InvoicePDFRequest) ([]byte, string, error) {
	if err := dto.Validate(in); err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !entity.ValidPaymentAmount(in.Payment) {
		return nil, "", fmt.Errorf("%w: payment %s fuera de rango o con más de dos decimales", domain.ErrInvalidInput, in.Payment)
	}
	date := uc.now()
	if in.Date != "" {
		d, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return nil, "", fmt.Errorf("%w: date", domain.ErrInvalidInput)
		}
		date = d
	}
	return uc.render(ctx, invoice.Document{
		Number:        in.InvoiceNumber,
		Date:          date,
		CustomerName:  in.CustomerName,
		PropertyTitle: in.PropertyTitle,
		PaymentGender: in.PaymentGender,
		PaymentMethod: in.PaymentMethod,
		Amount:        in.Payment,
	})
}

func (uc *PDFUseCase) render(ctx context.Context, doc invoice.Document) ([]byte, string, error) {
	pdfBytes, err := uc.generator.GenerateInvoicePDF(ctx, doc, uc.issuer)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("invoice_%s.pdf", doc.Number), nil
}
