// Package pdf genera la factura imprimible de una venta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + lema      │  N° Factura + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Saludo al cliente                                          │
//	│  DETALLE: número, fecha, cliente, propiedad, tipo, monto... │
//	│  Aviso de publicación                                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: equipo de soporte, teléfonos, emails                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	appsales "github.com/zyck/property-admin/internal/application/sales"
	"github.com/zyck/property-admin/internal/domain/invoice"
)

var _ appsales.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// goLiveNotice aviso fijo del cuerpo de la factura.
const goLiveNotice = "Your property will be live on %s within the next 30 minutes."

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa sales.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, doc invoice.Document, issuer invoice.Issuer) ([]byte, error) {
	company := nonEmpty(issuer.CompanyName, "Zyckproperty.com")
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Invoice "+doc.Number, true).
		WithAuthor(company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc, company, issuer.Tagline))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(greetingRow(doc))
	m.AddRows(detailRows(doc)...)
	m.AddRows(text.NewRow(12, fmt.Sprintf(goLiveNotice, company), props.Text{Size: 10, Top: 4}))
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(company, issuer)...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa + lema (izq) y N° factura + fecha (der).
func headerRow(doc invoice.Document, company, tagline string) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(company, props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 1,
			}),
			text.New(tagline, props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Invoice No.: "+doc.Number, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Date: "+doc.Date.Format("2006-01-02"), props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func greetingRow(doc invoice.Document) core.Row {
	return text.NewRow(12, fmt.Sprintf("Dear %s,", nonEmpty(doc.CustomerName, "Customer")), props.Text{
		Size: 11, Top: 5,
	})
}

// detailRows: "Invoice Details:" y una fila por par etiqueta/valor.
func detailRows(doc invoice.Document) []core.Row {
	rows := []core.Row{
		text.NewRow(10, "Invoice Details:", props.Text{
			Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 3,
		}),
	}
	for _, d := range doc.Details(FormatAmount(doc.Amount)) {
		rows = append(rows, row.New(7).Add(
			col.New(4).Add(text.New(d.Label+":", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1, Left: 4})),
			col.New(8).Add(text.New(d.Value, props.Text{Size: 9, Top: 1})),
		))
	}
	return rows
}

func footerRows(company string, issuer invoice.Issuer) []core.Row {
	small := props.Text{Size: 8, Color: colorGray, Top: 1}
	rows := []core.Row{
		text.NewRow(7, "Best Regards,", props.Text{Size: 9, Top: 2}),
		text.NewRow(7, company+" Support Team", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
	}
	if len(issuer.SupportPhones) > 0 {
		rows = append(rows, text.NewRow(5, "Phone: "+strings.Join(issuer.SupportPhones, " | "), small))
	}
	if len(issuer.SupportEmails) > 0 {
		rows = append(rows, text.NewRow(5, "Email: "+strings.Join(issuer.SupportEmails, " | "), small))
	}
	rows = append(rows, text.NewRow(8, "Visit "+company, props.Text{
		Style: fontstyle.Bold, Size: 9, Align: align.Center, Color: colorPrimary, Top: 3,
	}))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount separa miles con coma y conserva los decimales no nulos.
// Ej: 76543213 → "76,543,213", 1500.5 → "1,500.50".
func FormatAmount(d decimal.Decimal) string {
	fixed := d.Round(2)
	whole := fixed.Truncate(0)
	out := amountPrinter.Sprintf("%d", whole.IntPart())
	if fixed.Equal(whole) {
		return out
	}
	cents := fixed.Sub(whole).Abs().Shift(2).IntPart()
	if d.IsNegative() && whole.IsZero() {
		out = "-" + out
	}
	return fmt.Sprintf("%s.%02d", out, cents)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
