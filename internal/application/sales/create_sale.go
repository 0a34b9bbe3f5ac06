package sales

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zyck/property-admin/internal/application/dto"
	"github.com/zyck/property-admin/internal/domain"
	"github.com/zyck/property-admin/internal/domain/entity"
	"github.com/zyck/property-admin/internal/domain/invoice"
	"github.com/zyck/property-admin/internal/domain/repository"
)

// MessageSaleCreated texto de confirmación de POST /api/sales.
const MessageSaleCreated = "Sales done successfully"

// maxNumberAttempts números generados a probar ante colisión del índice único.
const maxNumberAttempts = 3

// Conflictos de unicidad. Ambos envuelven domain.ErrDuplicate.
var (
	ErrInvoiceTaken = fmt.Errorf("%w: número de factura en uso", domain.ErrDuplicate)
	ErrEmailTaken   = fmt.Errorf("%w: email ya registrado", domain.ErrDuplicate)
)

// Datos fijos de la venta de demostración (POST /api/invoice).
const (
	DemoUserID        = "kp_ac3d5b4e7e7146a0915fc6fcb1b0f184"
	DemoInvoiceNumber = "ZYCK-20250225-686722-XBF"
)

// CreateSaleUseCase registra una venta y, si hace falta, su usuario en una sola transacción.
type CreateSaleUseCase struct {
	txRunner    SalesTxRunner
	numbers     NumberGenerator
	invalidator ReportInvalidator
	now         func() time.Time
}

// NewCreateSaleUseCase construye el caso de uso. invalidator puede ser nil.
func NewCreateSaleUseCase(txRunner SalesTxRunner, numbers NumberGenerator, invalidator ReportInvalidator) *CreateSaleUseCase {
	return &CreateSaleUseCase{txRunner: txRunner, numbers: numbers, invalidator: invalidator, now: time.Now}
}

// CreateSale valida, normaliza método y tipo de pago, y persiste.
// Sin número de factura se genera uno; ante colisión se reintenta con otro.
// Un número enviado por el cliente que ya existe devuelve ErrInvoiceTaken.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !entity.ValidPaymentAmount(in.Payment) {
		return nil, fmt.Errorf("%w: payment %s fuera de rango o con más de dos decimales", domain.ErrInvalidInput, in.Payment)
	}
	method, ok := entity.NormalizePaymentMethod(in.PaymentMethod)
	if !ok {
		return nil, fmt.Errorf("%w: paymentMethod %q", domain.ErrInvalidInput, in.PaymentMethod)
	}
	gender, ok := entity.NormalizePaymentGender(in.PaymentGender)
	if !ok {
		return nil, fmt.Errorf("%w: paymentGender %q", domain.ErrInvalidInput, in.PaymentGender)
	}

	number := strings.TrimSpace(in.InvoiceNumber)
	generated := number == ""
	if !generated && !invoice.Valid(number) {
		return nil, fmt.Errorf("%w: invoiceNumber %q", domain.ErrInvalidInput, number)
	}

	for attempt := 1; ; attempt++ {
		if generated {
			n, err := uc.numbers.Next()
			if err != nil {
				return nil, err
			}
			number = n
		}
		now := uc.now().UTC()
		sale := &entity.Sale{
			ID:            uuid.New().String(),
			InvoiceNo:     number,
			PropertyTitle: strings.TrimSpace(in.PropertyTitle),
			PaymentAmount: in.Payment,
			PaymentMethod: method,
			PaymentGender: gender,
			CreatedAt:     now,
		}

		err := uc.txRunner.RunSales(ctx, func(userRepo repository.UserRepository, saleRepo repository.SaleRepository) error {
			userID, err := ensureUser(ctx, userRepo, in, now)
			if err != nil {
				return err
			}
			sale.UserID = userID
			if err := saleRepo.Create(ctx, sale); err != nil {
				if errors.Is(err, domain.ErrDuplicate) {
					return ErrInvoiceTaken
				}
				return err
			}
			return nil
		})
		if errors.Is(err, ErrInvoiceTaken) && generated && attempt < maxNumberAttempts {
			continue
		}
		if err != nil {
			return nil, err
		}

		if uc.invalidator != nil {
			_ = uc.invalidator.Bump(ctx)
		}
		out := toSaleResponse(sale)
		return &out, nil
	}
}

// CreateDemoSale registra la venta fija del entorno de desarrollo.
func (uc *CreateSaleUseCase) CreateDemoSale(ctx context.Context) (*dto.SaleResponse, error) {
	return uc.CreateSale(ctx, dto.CreateSaleRequest{
		ID:            DemoUserID,
		InvoiceNumber: DemoInvoiceNumber,
		Payment:       decimal.NewFromInt(76543213),
		PaymentMethod: "JazzCash",
		PaymentGender: "Direct_Client",
		FirstName:     "Nazia",
		LastName:      "Majid",
		Email:         "nazia@example.com",
	})
}

// ensureUser reutiliza el usuario por id o lo crea con los datos del formulario.
func ensureUser(ctx context.Context, userRepo repository.UserRepository, in dto.CreateSaleRequest, now time.Time) (string, error) {
	existing, err := userRepo.GetByID(ctx, in.ID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.ID, nil
	}
	if in.FirstName == "" || in.LastName == "" || in.Email == "" {
		return "", fmt.Errorf("%w: usuario %s inexistente; firstName, lastName y email son obligatorios", domain.ErrInvalidInput, in.ID)
	}
	u := &entity.User{
		ID:        in.ID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := userRepo.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return "", ErrEmailTaken
		}
		return "", err
	}
	return u.ID, nil
}
