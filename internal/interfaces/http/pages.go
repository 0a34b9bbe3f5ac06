package http

import (
	"bytes"
	"errors"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zyck/property-admin/internal/application/auth"
	appdaterange "github.com/zyck/property-admin/internal/application/daterange"
	"github.com/zyck/property-admin/internal/application/dto"
	"github.com/zyck/property-admin/internal/application/reporting"
	appsales "github.com/zyck/property-admin/internal/application/sales"
	"github.com/zyck/property-admin/internal/domain"
	"github.com/zyck/property-admin/internal/domain/daterange"
	"github.com/zyck/property-admin/internal/domain/listing"
	"github.com/zyck/property-admin/internal/infrastructure/svg"
	"github.com/zyck/property-admin/internal/interfaces/http/view"
	"github.com/zyck/property-admin/pkg/logger"
)

// PageHandler páginas HTML del panel: inicio de sesión, dashboard y ventas.
type PageHandler struct {
	views     *view.Engine
	auth      *auth.AuthUseCase
	dateRange *appdaterange.UseCase
	listing   *reporting.ListingUseCase
	table     *appsales.TableUseCase
	opts      SessionOptions
	log       *logger.Logger
}

// NewPageHandler construye el handler de páginas.
func NewPageHandler(views *view.Engine, authUC *auth.AuthUseCase, dateRange *appdaterange.UseCase, listingUC *reporting.ListingUseCase, table *appsales.TableUseCase, opts SessionOptions, log *logger.Logger) *PageHandler {
	return &PageHandler{views: views, auth: authUC, dateRange: dateRange, listing: listingUC, table: table, opts: opts, log: log}
}

// rangeForm valores del formulario de rango.
type rangeForm struct {
	Action    string
	StartDate string
	EndDate   string
}

type dashboardPage struct {
	Range    rangeForm
	Users    int64
	Listings int64
	Details  []dto.UserDetailResponse
}

type salesPage struct {
	Range        rangeForm
	Search       string
	Charts       *dto.ChartsResponse
	MonthlyChart template.HTML
	WeekdayChart template.HTML
	Table        *dto.SalesTableResponse
	Rows         [][]string
}

func (h *PageHandler) render(c *fiber.Ctx, status int, name string, data view.TemplateData) error {
	if s, exp := GetSession(c); s != nil {
		resp := h.auth.Session(s, exp)
		data.Session = &resp
	}
	data.CurrentPath = c.Path()
	var buf bytes.Buffer
	if err := h.views.Render(&buf, name, data); err != nil {
		return internalText(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

// SignInForm GET /signin. Con sesión válida redirige al destino.
func (h *PageHandler) SignInForm(c *fiber.Ctx) error {
	callback := safeCallback(c.Query("callbackUrl"))
	if s, _ := GetSession(c); s != nil {
		return c.Redirect(callback, fiber.StatusFound)
	}
	return h.render(c, fiber.StatusOK, "signin", view.TemplateData{Title: "Sign in", Data: callback})
}

// SignIn POST /signin (formulario).
func (h *PageHandler) SignIn(c *fiber.Ctx) error {
	var in dto.SignInRequest
	if err := c.BodyParser(&in); err != nil {
		return h.render(c, fiber.StatusBadRequest, "signin", view.TemplateData{Title: "Sign in", Error: "Invalid form", Data: "/"})
	}
	callback := safeCallback(in.CallbackURL)
	out, err := h.auth.SignIn(c.UserContext(), in)
	if err != nil {
		status, _, msg, ok := signInFailure(err)
		if !ok {
			h.log.Error().Err(err).Msg("inicio de sesión")
			status, msg = fiber.StatusInternalServerError, MsgInternal
		}
		return h.render(c, status, "signin", view.TemplateData{Title: "Sign in", Error: msg, Data: callback})
	}
	c.Cookie(h.opts.cookie(out.Token, out.Session.ExpiresAt))
	return c.Redirect(callback, fiber.StatusFound)
}

// SignOut GET /signout.
func (h *PageHandler) SignOut(c *fiber.Ctx) error {
	if err := h.auth.SignOut(c.UserContext(), sessionToken(c, h.opts)); err != nil {
		h.log.Error().Err(err).Msg("cerrar sesión")
	}
	c.Cookie(h.opts.expiredCookie())
	return c.Redirect("/signin", fiber.StatusFound)
}

// sessionRange aplica ?startDate&endDate o ?reset=1 al rango de la sesión y lo devuelve.
// redirect=true cuando hubo cambio y la página debe recargarse sin los parámetros.
func (h *PageHandler) sessionRange(c *fiber.Ctx) (r daterange.Range, redirect bool, formErr string, err error) {
	s, _ := GetSession(c)
	if s == nil {
		return daterange.Range{}, false, "", nil
	}
	ctx := c.UserContext()
	switch {
	case c.Query("reset") != "":
		if err := h.dateRange.Reset(ctx, s.SessionID); err != nil {
			return daterange.Range{}, false, "", err
		}
		return daterange.Range{}, true, "", nil
	case c.Query("startDate") != "" || c.Query("endDate") != "":
		_, err := h.dateRange.Set(ctx, s.SessionID, dto.DateRangeRequest{StartDate: c.Query("startDate"), EndDate: c.Query("endDate")})
		if err == nil {
			return daterange.Range{}, true, "", nil
		}
		if !errors.Is(err, domain.ErrInvalidDateRange) {
			return daterange.Range{}, false, "", err
		}
		formErr = "Invalid date range"
	}
	r, err = h.dateRange.Current(ctx, s.SessionID)
	return r, false, formErr, err
}

// Dashboard GET /: conteos del rango de la sesión (totales si no hay rango).
func (h *PageHandler) Dashboard(c *fiber.Ctx) error {
	r, redirect, formErr, err := h.sessionRange(c)
	if err != nil {
		return internalText(c, h.log, err)
	}
	if redirect {
		return c.Redirect(c.Path(), fiber.StatusFound)
	}

	page := dashboardPage{Range: rangeForm{Action: "/", StartDate: r.StartDate, EndDate: r.EndDate}}
	if r.IsZero() {
		totals, err := h.listing.Totals(c.UserContext())
		if err != nil {
			return internalText(c, h.log, err)
		}
		page.Users, page.Listings = totals.Users, totals.Listings
	} else {
		out, err := h.listing.Listing(c.UserContext(), r)
		if err != nil {
			return internalText(c, h.log, err)
		}
		page.Users, page.Listings, page.Details = out.Users, out.Listings, out.UsersDetails
	}
	return h.render(c, fiber.StatusOK, "dashboard", view.TemplateData{Title: "Dashboard", Error: formErr, Data: page})
}

// Sales GET /sales: gráficas y primera página de la tabla.
func (h *PageHandler) Sales(c *fiber.Ctx) error {
	r, redirect, formErr, err := h.sessionRange(c)
	if err != nil {
		return internalText(c, h.log, err)
	}
	if redirect {
		return c.Redirect(c.Path(), fiber.StatusFound)
	}
	ctx := c.UserContext()

	q := dto.SalesTableQuery{
		Search:    c.Query("search"),
		SortField: c.Query("sortField"),
		SortDir:   c.Query("sortDir"),
		Page:      c.QueryInt("page", 1),
	}
	table, charts, err := h.table.Overview(ctx, r, q)
	if err != nil {
		if !isClientError(err) || table == nil {
			return internalText(c, h.log, err)
		}
		formErr = "Invalid table parameters"
	}

	monthly, err := svg.Bars(0, 0, revenueFloats(charts.Monthly), countFloats(charts.Monthly), charts.Monthly.Labels, svg.BarOpts{
		Title:        "Monthly sales",
		SeriesALabel: "Total Revenue (PKR)",
		SeriesBLabel: "Total Sales (x10)",
	})
	if err != nil {
		return internalText(c, h.log, err)
	}
	weekday, err := svg.Bars(0, 0, revenueFloats(charts.Weekday), countFloats(charts.Weekday), charts.Weekday.Labels, svg.BarOpts{
		Title:        "Sales by weekday",
		SeriesALabel: "Revenue (PKR)",
		SeriesBLabel: "Sales",
	})
	if err != nil {
		return internalText(c, h.log, err)
	}

	page := salesPage{
		Range:        rangeForm{Action: "/sales", StartDate: r.StartDate, EndDate: r.EndDate},
		Search:       q.Search,
		Charts:       charts,
		MonthlyChart: monthly,
		WeekdayChart: weekday,
		Table:        table,
		Rows:         tableCells(table),
	}
	return h.render(c, fiber.StatusOK, "sales", view.TemplateData{Title: "Sales", Error: formErr, Data: page})
}

func revenueFloats(s dto.ChartSeries) []float64 {
	out := make([]float64, len(s.Revenue))
	for i, v := range s.Revenue {
		out[i] = v.InexactFloat64()
	}
	return out
}

func countFloats(s dto.ChartSeries) []float64 {
	out := make([]float64, len(s.Sales))
	for i, v := range s.Sales {
		out[i] = float64(v)
	}
	return out
}

// tableCells celdas de la tabla en el orden de las columnas visibles.
func tableCells(t *dto.SalesTableResponse) [][]string {
	rows := make([][]string, 0, len(t.Items))
	for _, it := range t.Items {
		cells := make([]string, 0, len(t.Columns))
		for _, col := range t.Columns {
			cells = append(cells, cellValue(it, col))
		}
		rows = append(rows, cells)
	}
	return rows
}

func cellValue(it dto.SaleRowResponse, col string) string {
	switch col {
	case listing.ColInvoiceNo:
		return it.InvoiceNo
	case listing.ColPropertyTitle:
		return it.PropertyTitle
	case listing.ColPaymentAmount:
		return it.PaymentAmount.StringFixed(2)
	case listing.ColPaymentMethod:
		return it.PaymentMethod
	case listing.ColGender:
		return it.PaymentGender
	case listing.ColName:
		return it.FirstName + " " + it.LastName
	case listing.ColEmail:
		return it.Email
	case listing.ColPhone:
		return it.PhoneNumber
	case listing.ColDate:
		return it.CreatedAt.Format(time.DateOnly)
	}
	return ""
}
