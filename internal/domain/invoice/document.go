package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

// Document datos de la representación imprimible de una factura.
type Document struct {
	Number        string
	Date          time.Time
	CustomerName  string
	CustomerEmail string
	PropertyTitle string
	PaymentGender string
	PaymentMethod string
	Amount        decimal.Decimal
}

// Issuer datos de la empresa que emite.
type Issuer struct {
	CompanyName   string
	Tagline       string
	SupportPhones []string
	SupportEmails []string
}

// Detail par etiqueta/valor de la sección "Invoice Details".
type Detail struct {
	Label string
	Value string
}

// Details líneas de detalle en orden de impresión. amount ya viene formateado.
func (d Document) Details(amount string) []Detail {
	return []Detail{
		{Label: "Invoice Number", Value: d.Number},
		{Label: "Date", Value: d.Date.Format("2006-01-02")},
		{Label: "Customer", Value: nonEmpty(d.CustomerName, "[Customer Name]")},
		{Label: "Property", Value: nonEmpty(d.PropertyTitle, "[Property Title]")},
		{Label: "Payment Gender", Value: nonEmpty(d.PaymentGender, "Property Owner")},
		{Label: "Amount", Value: "PKR " + amount},
		{Label: "Payment Method", Value: nonEmpty(d.PaymentMethod, "[Payment Method]")},
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
