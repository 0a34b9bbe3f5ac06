package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados (enum de la base más las etiquetas del formulario).
const (
	PaymentJazzCash     = "JAZZ_CASH"
	PaymentCreditCard   = "CREDIT_CARD"
	PaymentBankTransfer = "BANK_TRANSFER"
)

// Tipos de cliente ("payment gender") aceptados.
const (
	GenderDirectClients = "DIRECT_CLIENTS"
	GenderAgencies      = "AGENCIES"
	GenderAgent         = "AGENT"
	GenderProject       = "PROJECT"
)

// Sale registro de venta (una factura) asociado a un usuario.
// Inmutable una vez creado.
type Sale struct {
	ID            string
	InvoiceNo     string
	PropertyTitle string
	PaymentAmount decimal.Decimal
	PaymentMethod string
	PaymentGender string
	UserID        string
	CreatedAt     time.Time
}

// SaleWithUser venta con los datos del usuario para la tabla de ventas.
type SaleWithUser struct {
	Sale
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
}

var labelKey = strings.NewReplacer(" ", "", "_", "", "-", "")

var paymentMethods = map[string]string{
	"JAZZCASH":     PaymentJazzCash,
	"CREDITCARD":   PaymentCreditCard,
	"BANKTRANSFER": PaymentBankTransfer,
}

var paymentGenders = map[string]string{
	"DIRECTCLIENTS": GenderDirectClients,
	"DIRECTCLIENT":  GenderDirectClients,
	"AGENCIES":      GenderAgencies,
	"AGENCY":        GenderAgencies,
	"AGENT":         GenderAgent,
	"PROJECT":       GenderProject,
}

// NormalizePaymentMethod acepta el valor canónico o su etiqueta ("JazzCash", "Credit Card").
func NormalizePaymentMethod(s string) (string, bool) {
	v, ok := paymentMethods[strings.ToUpper(labelKey.Replace(strings.TrimSpace(s)))]
	return v, ok
}

// NormalizePaymentGender acepta el valor canónico o su etiqueta ("Direct_Client", "Agency").
func NormalizePaymentGender(s string) (string, bool) {
	v, ok := paymentGenders[strings.ToUpper(labelKey.Replace(strings.TrimSpace(s)))]
	return v, ok
}

// MaxPaymentAmount límite exclusivo de payment_amount NUMERIC(16,2).
var MaxPaymentAmount = decimal.New(1, 14)

// ValidPaymentAmount monto positivo, con dos decimales como máximo y menor que MaxPaymentAmount.
func ValidPaymentAmount(d decimal.Decimal) bool {
	return d.IsPositive() && d.Equal(d.Round(2)) && d.LessThan(MaxPaymentAmount)
}
