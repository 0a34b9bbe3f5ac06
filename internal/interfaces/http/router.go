package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/zyck/property-admin/internal/application/auth"
	appdaterange "github.com/zyck/property-admin/internal/application/daterange"
	"github.com/zyck/property-admin/internal/application/dto"
	"github.com/zyck/property-admin/internal/application/reporting"
	appsales "github.com/zyck/property-admin/internal/application/sales"
	"github.com/zyck/property-admin/internal/application/usecase"
	"github.com/zyck/property-admin/internal/interfaces/http/view"
	"github.com/zyck/property-admin/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Log         *logger.Logger
	AuthUC      *auth.AuthUseCase
	DateRangeUC *appdaterange.UseCase
	ListingUC   *reporting.ListingUseCase
	ProvinceUC  *reporting.ProvinceUseCase
	UserUC      *usecase.UserUseCase
	PropertyUC  *usecase.PropertyUseCase
	CreateSale  *appsales.CreateSaleUseCase
	SalesTable  *appsales.TableUseCase
	SalesExport *appsales.ExportUseCase
	InvoicePDF  *appsales.PDFUseCase
	Numbers     appsales.NumberGenerator
	Views       *view.Engine
	Session     SessionOptions
	// RateLimitPerMinute peticiones por IP en /api; 0 desactiva el límite.
	RateLimitPerMinute int
	InvoiceDemoEnabled bool
}

// Router registra middlewares, la API y las páginas HTML.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	app.Use(RequestLogger(log.Component("http")))
	app.Use(SessionGate(deps.AuthUC, deps.Session, log))

	apiHandlers := []fiber.Handler{}
	if deps.RateLimitPerMinute > 0 {
		apiHandlers = append(apiHandlers, limiter.New(limiter.Config{
			Max:        deps.RateLimitPerMinute,
			Expiration: time.Minute,
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RATE_LIMITED", Message: "demasiadas peticiones"})
			},
		}))
	}
	api := app.Group("/api", apiHandlers...)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC, deps.Session, log)
	authGroup := api.Group("/auth")
	authGroup.Post("/signin", authHandler.SignIn)
	authGroup.Post("/signout", authHandler.SignOut)
	authGroup.Get("/session", authHandler.Session)

	// Rango de fechas de la sesión
	rangeHandler := NewDateRangeHandler(deps.DateRangeUC, log)
	api.Get("/session/date-range", rangeHandler.Get)
	api.Put("/session/date-range", rangeHandler.Put)
	api.Delete("/session/date-range", rangeHandler.Delete)

	// Reportes
	reportHandler := NewReportHandler(deps.ListingUC, deps.ProvinceUC, log)
	api.Get("/listing", reportHandler.Listing)
	api.Get("/listing/totals", reportHandler.Totals)
	api.Get("/provinces", reportHandler.Provinces)
	api.Get("/provinces/summary", reportHandler.ProvinceSummary)

	// Users
	userHandler := NewUserHandler(deps.UserUC, log)
	api.Get("/users", userHandler.List)
	api.Delete("/users", userHandler.Delete)
	api.Put("/users/activeStatus", userHandler.SetActiveStatus)

	// Properties
	propertyHandler := NewPropertyHandler(deps.PropertyUC, log)
	api.Get("/properties", propertyHandler.List)
	api.Delete("/properties", propertyHandler.Delete)

	// Sales
	salesHandler := NewSalesHandler(deps.CreateSale, deps.SalesTable, deps.SalesExport, deps.InvoicePDF, log)
	api.Post("/sales", salesHandler.Create)
	api.Get("/sales", salesHandler.Table)
	api.Get("/sales/charts", salesHandler.Charts)
	api.Get("/sales/export", salesHandler.Export)
	api.Get("/sales/:invoiceNo/pdf", salesHandler.PDF)

	// Invoice
	invoiceHandler := NewInvoiceHandler(salesHandler, deps.Numbers, deps.InvoicePDF, deps.InvoiceDemoEnabled, log)
	api.Post("/invoice", invoiceHandler.Demo)
	api.Get("/invoice/number", invoiceHandler.Number)
	api.Post("/invoice/pdf", invoiceHandler.PDF)

	// Páginas HTML
	if deps.Views != nil {
		pages := NewPageHandler(deps.Views, deps.AuthUC, deps.DateRangeUC, deps.ListingUC, deps.SalesTable, deps.Session, log)
		app.Get("/signin", pages.SignInForm)
		app.Post("/signin", pages.SignIn)
		app.Get("/signout", pages.SignOut)
		app.Get("/", pages.Dashboard)
		app.Get("/sales", pages.Sales)
	}
}
