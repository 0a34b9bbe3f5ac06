package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zyck/property-admin/internal/application/dto"
	appsales "github.com/zyck/property-admin/internal/application/sales"
	"github.com/zyck/property-admin/internal/domain"
	"github.com/zyck/property-admin/internal/domain/daterange"
	"github.com/zyck/property-admin/internal/domain/entity"
	"github.com/zyck/property-admin/internal/domain/invoice"
)

func seededStore(n int) *memStore {
	store := newMemStore()
	store.users["u1"] = &entity.User{ID: "u1", FirstName: "Nazia", LastName: "Majid", Email: "nazia@example.com"}
	base := time.Date(2025, 2, 24, 10, 0, 0, 0, time.UTC) // lunes
	for i := 0; i < n; i++ {
		store.sales = append(store.sales, &entity.Sale{
			ID:            string(rune('a' + i)),
			InvoiceNo:     "ZYCK-" + string(rune('A'+i)),
			PaymentAmount: decimal.NewFromInt(int64(100 * (i + 1))),
			PaymentMethod: entity.PaymentJazzCash,
			PaymentGender: entity.GenderAgent,
			UserID:        "u1",
			CreatedAt:     base.Add(time.Duration(i) * 24 * time.Hour),
		})
	}
	return store
}

func TestTableList_PaginaYColumnas(t *testing.T) {
	uc := appsales.NewTableUseCase(memSales{seededStore(12)})

	out, err := uc.List(context.Background(), daterange.Range{}, dto.SalesTableQuery{PageSize: 5, Page: 3, ViewportWidth: 600})
	require.NoError(t, err)
	assert.Equal(t, 12, out.Total)
	assert.Equal(t, 3, out.TotalPages)
	assert.Equal(t, 3, out.Page)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 11, out.From)
	assert.Equal(t, 12, out.To)
	assert.Equal(t, []string{"invoiceNo", "propertyTitle", "paymentAmount"}, out.Columns)
	assert.False(t, out.Empty)
	assert.Equal(t, "createdAt", out.SortField)
	assert.Equal(t, "desc", out.SortDir)
	// createdAt desc: la página 3 contiene las dos ventas más antiguas
	assert.Equal(t, "ZYCK-B", out.Items[0].InvoiceNo)
	assert.Equal(t, "ZYCK-A", out.Items[1].InvoiceNo)
}

func TestTableList_SinDatos(t *testing.T) {
	uc := appsales.NewTableUseCase(memSales{newMemStore()})

	out, err := uc.List(context.Background(), daterange.Range{}, dto.SalesTableQuery{})
	require.NoError(t, err)
	assert.True(t, out.Empty)
	assert.Empty(t, out.Items)
	assert.Len(t, out.Columns, 9)
}

func TestTableList_RangoYBusqueda(t *testing.T) {
	uc := appsales.NewTableUseCase(memSales{seededStore(10)})
	r, err := daterange.Parse("2025-02-24", "2025-02-26")
	require.NoError(t, err)

	out, err := uc.List(context.Background(), r, dto.SalesTableQuery{SortField: "paymentAmount", SortDir: "asc"})
	require.NoError(t, err)
	require.Len(t, out.Items, 3)
	assert.Equal(t, "ZYCK-A", out.Items[0].InvoiceNo)

	out, err = uc.List(context.Background(), r, dto.SalesTableQuery{Search: "zyck-c"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Nazia", out.Items[0].FirstName)
}

func TestTableList_CampoDeOrdenInvalido(t *testing.T) {
	uc := appsales.NewTableUseCase(memSales{seededStore(1)})

	_, err := uc.List(context.Background(), daterange.Range{}, dto.SalesTableQuery{SortField: "phone"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.List(context.Background(), daterange.Range{}, dto.SalesTableQuery{PageSize: 7})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCharts_CubetasYTotal(t *testing.T) {
	uc := appsales.NewTableUseCase(memSales{seededStore(7)})

	out, err := uc.Charts(context.Background(), daterange.Range{})
	require.NoError(t, err)
	assert.Len(t, out.Monthly.Labels, 12)
	assert.Len(t, out.Weekday.Labels, 7)
	// 24-feb..28-feb en febrero, 1 y 2 de marzo
	assert.Equal(t, 50, out.Monthly.Sales[1])
	assert.Equal(t, 20, out.Monthly.Sales[2])
	for i := 0; i < 7; i++ {
		assert.Equal(t, 1, out.Weekday.Sales[i], "día %d", i)
	}
	assert.True(t, out.TotalRevenue.Equal(decimal.NewFromInt(2800)))
	assert.Equal(t, 7, out.TotalSales)
}

func TestOverview_UnaSolaLectura(t *testing.T) {
	calls := 0
	uc := appsales.NewTableUseCase(countingSales{memSales{seededStore(7)}, &calls})

	table, charts, err := uc.Overview(context.Background(), daterange.Range{}, dto.SalesTableQuery{Search: "ZYCK-C", Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, table.Total)
	assert.Equal(t, "ZYCK-C", table.Items[0].InvoiceNo)
	// las gráficas no dependen de la búsqueda
	assert.Equal(t, 7, charts.TotalSales)
	assert.True(t, charts.TotalRevenue.Equal(decimal.NewFromInt(2800)))
}

func TestOverview_ParametrosInvalidosDevuelveTablaPorDefecto(t *testing.T) {
	calls := 0
	uc := appsales.NewTableUseCase(countingSales{memSales{seededStore(3)}, &calls})

	table, charts, err := uc.Overview(context.Background(), daterange.Range{}, dto.SalesTableQuery{SortField: "nope"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	require.NotNil(t, table)
	require.NotNil(t, charts)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 3, table.Total)
	assert.Equal(t, "createdAt", table.SortField)
	assert.Equal(t, 3, charts.TotalSales)
}

func TestPDF_DesdeRegistro(t *testing.T) {
	store := seededStore(1)
	gen := &capturePDF{}
	issuer := invoice.Issuer{CompanyName: "Zyckproperty.com"}
	uc := appsales.NewPDFUseCase(memSales{store}, gen, issuer)

	data, name, err := uc.FromRecord(context.Background(), "ZYCK-A")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(data))
	assert.Equal(t, "invoice_ZYCK-A.pdf", name)
	assert.Equal(t, "Nazia Majid", gen.doc.CustomerName)
	assert.True(t, gen.doc.Amount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "Zyckproperty.com", gen.issuer.CompanyName)

	_, _, err = uc.FromRecord(context.Background(), "NOPE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPDF_DesdeFormulario(t *testing.T) {
	gen := &capturePDF{}
	uc := appsales.NewPDFUseCase(memSales{newMemStore()}, gen, invoice.Issuer{})

	_, _, err := uc.FromForm(context.Background(), dto.InvoicePDFRequest{
		InvoiceNumber: "ZYCK-20250225-686722-XBF",
		Date:          "2025-02-25",
		CustomerName:  "Nazia Majid",
		PropertyTitle: "Plot 12",
		Payment:       decimal.NewFromInt(500),
		PaymentMethod: "JAZZ_CASH",
		PaymentGender: "AGENT",
	})
	require.NoError(t, err)
	assert.Equal(t, 25, gen.doc.Date.Day())

	_, _, err = uc.FromForm(context.Background(), dto.InvoicePDFRequest{InvoiceNumber: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = uc.FromForm(context.Background(), dto.InvoicePDFRequest{
		InvoiceNumber: "ZYCK-20250225-686722-XBF",
		CustomerName:  "Nazia Majid",
		PropertyTitle: "Plot 12",
		Payment:       decimal.RequireFromString("0.004"),
		PaymentMethod: "JAZZ_CASH",
		PaymentGender: "AGENT",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
