package listing

// Columnas de la tabla de ventas.
const (
	ColInvoiceNo     = "invoiceNo"
	ColPropertyTitle = "propertyTitle"
	ColPaymentAmount = "paymentAmount"
	ColPaymentMethod = "paymentMethod"
	ColGender        = "gender"
	ColName          = "name"
	ColEmail         = "email"
	ColPhone         = "phone"
	ColDate          = "date"
)

// AllColumns orden de presentación.
var AllColumns = []string{
	ColInvoiceNo, ColPropertyTitle, ColPaymentAmount, ColPaymentMethod,
	ColGender, ColName, ColEmail, ColPhone, ColDate,
}

// Columns visibilidad por columna.
type Columns map[string]bool

// Visible columnas visibles en orden de presentación.
func (c Columns) Visible() []string {
	out := make([]string, 0, len(AllColumns))
	for _, name := range AllColumns {
		if c[name] {
			out = append(out, name)
		}
	}
	return out
}

// VisibleColumns visibilidad según el ancho del viewport (px).
// Cortes: <640, <768, <1024, resto.
func VisibleColumns(width int) Columns {
	c := Columns{}
	for _, name := range AllColumns {
		c[name] = false
	}
	c[ColInvoiceNo], c[ColPropertyTitle], c[ColPaymentAmount] = true, true, true
	if width < 640 {
		return c
	}
	c[ColPaymentMethod], c[ColName], c[ColDate] = true, true, true
	if width < 768 {
		return c
	}
	c[ColGender], c[ColEmail] = true, true
	if width < 1024 {
		return c
	}
	c[ColPhone] = true
	return c
}
