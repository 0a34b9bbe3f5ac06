// Package sales contiene las transformaciones puras sobre la lista de ventas:
// filtro, orden, y agrupación para las gráficas.
package sales

import (
	"errors"
	"sort"
	"strings"

	"github.com/zyck/property-admin/internal/domain/entity"
)

// ErrUnknownSortField campo de orden no soportado.
var ErrUnknownSortField = errors.New("sales: campo de orden desconocido")

// Row venta unida a su usuario.
type Row = entity.SaleWithUser

// SortField campo ordenable de la tabla.
type SortField string

const (
	SortInvoiceNo     SortField = "invoiceNo"
	SortPropertyTitle SortField = "propertyTitle"
	SortPaymentAmount SortField = "paymentAmount"
	SortPaymentMethod SortField = "paymentMethod"
	SortPaymentGender SortField = "paymentGender"
	SortCreatedAt     SortField = "createdAt"
)

// Direction sentido del orden.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Order campo + dirección. El valor por defecto es createdAt desc.
type Order struct {
	Field     SortField
	Direction Direction
}

// DefaultOrder orden inicial de la tabla.
func DefaultOrder() Order {
	return Order{Field: SortCreatedAt, Direction: Desc}
}

// ParseSortField valida el nombre del campo; vacío devuelve createdAt.
func ParseSortField(s string) (SortField, error) {
	if s == "" {
		return SortCreatedAt, nil
	}
	f := SortField(s)
	switch f {
	case SortInvoiceNo, SortPropertyTitle, SortPaymentAmount, SortPaymentMethod, SortPaymentGender, SortCreatedAt:
		return f, nil
	}
	return "", ErrUnknownSortField
}

// ParseDirection "asc" o cualquier otro valor = desc.
func ParseDirection(s string) Direction {
	if strings.EqualFold(s, string(Asc)) {
		return Asc
	}
	return Desc
}

// Toggle invierte la dirección.
func (d Direction) Toggle() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// Click semántica del encabezado: mismo campo invierte, otro campo entra ascendente.
func (o Order) Click(field SortField) Order {
	if field == o.Field {
		return Order{Field: field, Direction: o.Direction.Toggle()}
	}
	return Order{Field: field, Direction: Asc}
}

// Filter coincidencia por subcadena sin distinguir mayúsculas en factura,
// título, método de pago, nombre, apellido y email. Término vacío = todo.
// No modifica la entrada.
func Filter(rows []Row, term string) []Row {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if term == "" || matches(r, term) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r Row, term string) bool {
	for _, v := range [...]string{r.InvoiceNo, r.PropertyTitle, r.PaymentMethod, r.FirstName, r.LastName, r.Email} {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}

// Sort ordena una copia de rows de forma estable (empates conservan el orden de entrada).
func Sort(rows []Row, o Order) ([]Row, error) {
	less, err := comparator(o.Field)
	if err != nil {
		return nil, err
	}
	out := make([]Row, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		if o.Direction == Asc {
			return less(out[i], out[j])
		}
		return less(out[j], out[i])
	})
	return out, nil
}

func comparator(f SortField) (func(a, b Row) bool, error) {
	switch f {
	case SortInvoiceNo:
		return func(a, b Row) bool { return a.InvoiceNo < b.InvoiceNo }, nil
	case SortPropertyTitle:
		return func(a, b Row) bool { return a.PropertyTitle < b.PropertyTitle }, nil
	case SortPaymentAmount:
		return func(a, b Row) bool { return a.PaymentAmount.LessThan(b.PaymentAmount) }, nil
	case SortPaymentMethod:
		return func(a, b Row) bool { return a.PaymentMethod < b.PaymentMethod }, nil
	case SortPaymentGender:
		return func(a, b Row) bool { return a.PaymentGender < b.PaymentGender }, nil
	case SortCreatedAt:
		return func(a, b Row) bool { return a.CreatedAt.UnixMilli() < b.CreatedAt.UnixMilli() }, nil
	}
	return nil, ErrUnknownSortField
}

// Apply filtro y luego orden.
func Apply(rows []Row, term string, o Order) ([]Row, error) {
	return Sort(Filter(rows, term), o)
}
