package sales

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zyck/property-admin/internal/domain/entity"
)

func row(inv, title, method, gender, first, email string, amount int64, at time.Time) Row {
	return Row{
		Sale: entity.Sale{
			ID:            inv,
			InvoiceNo:     inv,
			PropertyTitle: title,
			PaymentAmount: decimal.NewFromInt(amount),
			PaymentMethod: method,
			PaymentGender: gender,
			CreatedAt:     at,
		},
		FirstName: first,
		LastName:  "Majid",
		Email:     email,
	}
}

func fixture() []Row {
	return []Row{
		// 2025-02-24 es lunes; 2025-03-02 domingo.
		row("ZYCK-1", "Villa DHA", "JazzCash", "AGENT", "Nazia", "nazia@example.com", 1000, time.Date(2025, 2, 24, 10, 0, 0, 0, time.UTC)),
		row("ZYCK-2", "Flat Gulberg", "CREDIT_CARD", "AGENCIES", "Ali", "ali@example.com", 250, time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)),
		row("ZYCK-3", "Plot Bahria", "BANK_TRANSFER", "AGENT", "Sara", "sara@example.com", 250, time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)),
		row("ZYCK-4", "House F-7", "JazzCash", "PROJECT", "Omar", "omar@example.com", 99, time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC)),
	}
}

func invoices(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.InvoiceNo
	}
	return out
}

// ── Filtro ────────────────────────────────────────────────────────────────────

func TestFilter_SinDistinguirMayusculas(t *testing.T) {
	rows := fixture()
	assert.Equal(t, []string{"ZYCK-1", "ZYCK-4"}, invoices(Filter(rows, "jazzcash")))
	assert.Equal(t, []string{"ZYCK-2"}, invoices(Filter(rows, "GULBERG")))
	assert.Equal(t, []string{"ZYCK-3"}, invoices(Filter(rows, "sara@")))
	assert.Len(t, Filter(rows, "majid"), 4, "el apellido también participa")
}

func TestFilter_SinCoincidenciasDaVacio(t *testing.T) {
	out := Filter(fixture(), "no-existe")
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestFilter_TerminoVacioNoMuta(t *testing.T) {
	rows := fixture()
	out := Filter(rows, "  ")
	assert.Equal(t, rows, out)
	out[0].InvoiceNo = "cambiado"
	assert.Equal(t, "ZYCK-1", rows[0].InvoiceNo)
}

// ── Orden ─────────────────────────────────────────────────────────────────────

func TestSort_PorDefectoFechaDescendente(t *testing.T) {
	out, err := Sort(fixture(), DefaultOrder())
	require.NoError(t, err)
	assert.Equal(t, []string{"ZYCK-4", "ZYCK-2", "ZYCK-1", "ZYCK-3"}, invoices(out))
}

func TestSort_EstableEnEmpates(t *testing.T) {
	out, err := Sort(fixture(), Order{Field: SortPaymentAmount, Direction: Asc})
	require.NoError(t, err)
	assert.Equal(t, []string{"ZYCK-4", "ZYCK-2", "ZYCK-3", "ZYCK-1"}, invoices(out))

	out, err = Sort(fixture(), Order{Field: SortPaymentGender, Direction: Desc})
	require.NoError(t, err)
	assert.Equal(t, []string{"ZYCK-4", "ZYCK-1", "ZYCK-3", "ZYCK-2"}, invoices(out))
}

func TestSort_DobleInversionVuelveAlOrdenOriginal(t *testing.T) {
	fields := []SortField{SortInvoiceNo, SortPropertyTitle, SortPaymentAmount, SortPaymentMethod, SortPaymentGender, SortCreatedAt}
	for _, f := range fields {
		o := Order{Field: f, Direction: Asc}
		first, err := Sort(fixture(), o)
		require.NoError(t, err)

		o = o.Click(f).Click(f)
		again, err := Sort(fixture(), o)
		require.NoError(t, err)
		assert.Equal(t, invoices(first), invoices(again), "campo %s", f)
	}
}

func TestSort_CampoDesconocido(t *testing.T) {
	_, err := Sort(fixture(), Order{Field: "phone", Direction: Asc})
	assert.ErrorIs(t, err, ErrUnknownSortField)

	_, err = ParseSortField("phone")
	assert.ErrorIs(t, err, ErrUnknownSortField)

	f, err := ParseSortField("")
	require.NoError(t, err)
	assert.Equal(t, SortCreatedAt, f)
}

func TestOrder_Click(t *testing.T) {
	o := DefaultOrder()
	o = o.Click(SortCreatedAt)
	assert.Equal(t, Order{Field: SortCreatedAt, Direction: Asc}, o)

	o = o.Click(SortInvoiceNo)
	assert.Equal(t, Order{Field: SortInvoiceNo, Direction: Asc}, o, "otro campo entra ascendente")

	o = o.Click(SortInvoiceNo)
	assert.Equal(t, Desc, o.Direction)
	assert.Equal(t, Desc, ParseDirection("DESC"))
	assert.Equal(t, Asc, ParseDirection("asc"))
}

// ── Gráficas ──────────────────────────────────────────────────────────────────

func sumBuckets(b []Bucket) decimal.Decimal {
	total := decimal.Zero
	for _, x := range b {
		total = total.Add(x.Revenue)
	}
	return total
}

func TestMonthlyBuckets(t *testing.T) {
	rows := fixture()
	b := MonthlyBuckets(rows)

	assert.Equal(t, "Jan", b[0].Label)
	assert.Equal(t, 1, b[0].Count)
	assert.Equal(t, 10, b[0].ScaledCount)
	assert.True(t, b[1].Revenue.Equal(decimal.NewFromInt(1000)))
	assert.True(t, b[11].Revenue.Equal(decimal.NewFromInt(99)))
	assert.Equal(t, 0, b[5].Count)
	assert.True(t, sumBuckets(b[:]).Equal(TotalRevenue(rows)), "la suma de cubetas debe igualar el total")
}

func TestWeekdayBuckets_LunesEsCero(t *testing.T) {
	rows := fixture()
	b := WeekdayBuckets(rows)

	assert.Equal(t, 1, b[0].Count, "2025-02-24 es lunes")
	assert.True(t, b[0].Revenue.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, 1, b[6].Count, "domingo va al índice 6")
	assert.True(t, b[6].Revenue.Equal(decimal.NewFromInt(250)))
	assert.True(t, sumBuckets(b[:]).Equal(TotalRevenue(rows)))
}

func TestBuckets_SinMutarEntrada(t *testing.T) {
	rows := fixture()
	before := invoices(rows)
	MonthlyBuckets(rows)
	WeekdayBuckets(rows)
	assert.Equal(t, before, invoices(rows))
}

func TestBuckets_Vacio(t *testing.T) {
	b := MonthlyBuckets(nil)
	assert.True(t, sumBuckets(b[:]).IsZero())
	assert.True(t, TotalRevenue(nil).IsZero())
}
