package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zyck/property-admin/internal/application/dto"
	"github.com/zyck/property-admin/internal/domain"
	"github.com/zyck/property-admin/internal/domain/daterange"
	"github.com/zyck/property-admin/internal/domain/listing"
	"github.com/zyck/property-admin/internal/domain/repository"
	domsales "github.com/zyck/property-admin/internal/domain/sales"
)

// TableUseCase lectura de ventas para la tabla, las gráficas y la exportación.
type TableUseCase struct {
	saleRepo repository.SaleRepository
}

// NewTableUseCase construye el caso de uso.
func NewTableUseCase(saleRepo repository.SaleRepository) *TableUseCase {
	return &TableUseCase{saleRepo: saleRepo}
}

// Rows ventas del rango (todas si r es cero), filtradas por search y ordenadas.
func (uc *TableUseCase) Rows(ctx context.Context, r daterange.Range, search string, order domsales.Order) ([]domsales.Row, error) {
	rows, err := uc.load(ctx, r)
	if err != nil {
		return nil, err
	}
	return filterSort(rows, search, order)
}

func (uc *TableUseCase) load(ctx context.Context, r daterange.Range) ([]domsales.Row, error) {
	var from, to *time.Time
	if !r.IsZero() {
		f, t := r.Bounds()
		from, to = &f, &t
	}
	rows, err := uc.saleRepo.ListWithUsers(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("listar ventas: %w", err)
	}
	return rows, nil
}

func filterSort(rows []domsales.Row, search string, order domsales.Order) ([]domsales.Row, error) {
	out, err := domsales.Apply(rows, search, order)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return out, nil
}

// Order traduce los parámetros de orden; vacío = createdAt desc.
func Order(field, dir string) (domsales.Order, error) {
	if field == "" && dir == "" {
		return domsales.DefaultOrder(), nil
	}
	f, err := domsales.ParseSortField(field)
	if err != nil {
		return domsales.Order{}, fmt.Errorf("%w: sortField %q", domain.ErrInvalidInput, field)
	}
	return domsales.Order{Field: f, Direction: domsales.ParseDirection(dir)}, nil
}

// List página de la tabla con las columnas visibles para el ancho dado.
func (uc *TableUseCase) List(ctx context.Context, r daterange.Range, q dto.SalesTableQuery) (*dto.SalesTableResponse, error) {
	if err := dto.Validate(q); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	rows, err := uc.load(ctx, r)
	if err != nil {
		return nil, err
	}
	return table(rows, q)
}

// Charts cubetas mensual y semanal de las ventas del rango.
func (uc *TableUseCase) Charts(ctx context.Context, r daterange.Range) (*dto.ChartsResponse, error) {
	rows, err := uc.load(ctx, r)
	if err != nil {
		return nil, err
	}
	return charts(rows), nil
}

// Overview gráficas y página de la tabla con una sola lectura del rango.
// Si q no es válida se devuelve la tabla por defecto junto con el error de validación.
func (uc *TableUseCase) Overview(ctx context.Context, r daterange.Range, q dto.SalesTableQuery) (*dto.SalesTableResponse, *dto.ChartsResponse, error) {
	rows, err := uc.load(ctx, r)
	if err != nil {
		return nil, nil, err
	}
	c := charts(rows)
	var qerr error
	if qerr = dto.Validate(q); qerr != nil {
		qerr = fmt.Errorf("%w: %v", domain.ErrInvalidInput, qerr)
	} else {
		t, err := table(rows, q)
		if err == nil {
			return t, c, nil
		}
		qerr = err
	}
	t, err := table(rows, dto.SalesTableQuery{})
	if err != nil {
		return nil, nil, err
	}
	return t, c, qerr
}

func table(rows []domsales.Row, q dto.SalesTableQuery) (*dto.SalesTableResponse, error) {
	order, err := Order(q.SortField, q.SortDir)
	if err != nil {
		return nil, err
	}
	rows, err = filterSort(rows, q.Search, order)
	if err != nil {
		return nil, err
	}

	state := listing.NewState()
	if q.PageSize > 0 {
		state.SetPageSize(q.PageSize)
	}
	if q.Page > 0 {
		state.Page = q.Page
	}
	page := listing.Paginate(rows, state.Page, state.PageSize)

	width := q.ViewportWidth
	if width == 0 {
		width = 1024
	}
	items := make([]dto.SaleRowResponse, 0, len(page.Items))
	for _, row := range page.Items {
		items = append(items, toSaleRowResponse(row))
	}
	return &dto.SalesTableResponse{
		Items:     items,
		PageMeta:  pageMeta(page),
		SortField: string(order.Field),
		SortDir:   string(order.Direction),
		Columns:   listing.VisibleColumns(width).Visible(),
		Empty:     page.Empty(),
	}, nil
}

func charts(rows []domsales.Row) *dto.ChartsResponse {
	monthly := domsales.MonthlyBuckets(rows)
	weekday := domsales.WeekdayBuckets(rows)
	return &dto.ChartsResponse{
		Monthly:      series(monthly[:], true),
		Weekday:      series(weekday[:], false),
		TotalRevenue: domsales.TotalRevenue(rows),
		TotalSales:   len(rows),
	}
}

func series(buckets []domsales.Bucket, scaled bool) dto.ChartSeries {
	s := dto.ChartSeries{
		Labels:  make([]string, len(buckets)),
		Revenue: make([]decimal.Decimal, len(buckets)),
		Sales:   make([]int, len(buckets)),
	}
	for i, b := range buckets {
		s.Labels[i] = b.Label
		s.Revenue[i] = b.Revenue
		s.Sales[i] = b.Count
		if scaled {
			s.Sales[i] = b.ScaledCount
		}
	}
	return s
}

func pageMeta[T any](p listing.Page[T]) dto.PageMeta {
	return dto.PageMeta{
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      p.Total,
		TotalPages: p.TotalPages,
		From:       p.From,
		To:         p.To,
		Pages:      p.Pages,
	}
}

// ── Exportación ──────────────────────────────────────────────────────────────

// ExportUseCase hoja de cálculo de las ventas filtradas.
type ExportUseCase struct {
	table    *TableUseCase
	exporter SalesExporter
	now      func() time.Time
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(table *TableUseCase, exporter SalesExporter) *ExportUseCase {
	return &ExportUseCase{table: table, exporter: exporter, now: time.Now}
}

// Export devuelve el XLSX y el nombre de archivo sugerido.
func (uc *ExportUseCase) Export(ctx context.Context, r daterange.Range, search, sortField, sortDir string) ([]byte, string, error) {
	order, err := Order(sortField, sortDir)
	if err != nil {
		return nil, "", err
	}
	rows, err := uc.table.Rows(ctx, r, search, order)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.exporter.ExportSales(ctx, rows)
	if err != nil {
		return nil, "", fmt.Errorf("exportar ventas: %w", err)
	}
	return data, fmt.Sprintf("sales_%s.xlsx", uc.now().Format("20060102")), nil
}
