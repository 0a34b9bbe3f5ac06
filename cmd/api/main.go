package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/zyck/property-admin/internal/application/auth"
	appdaterange "github.com/zyck/property-admin/internal/application/daterange"
	"github.com/zyck/property-admin/internal/application/reporting"
	appsales "github.com/zyck/property-admin/internal/application/sales"
	"github.com/zyck/property-admin/internal/application/usecase"
	"github.com/zyck/property-admin/internal/domain/invoice"
	"github.com/zyck/property-admin/internal/infrastructure/cache"
	"github.com/zyck/property-admin/internal/infrastructure/excel"
	infrapdf "github.com/zyck/property-admin/internal/infrastructure/pdf"
	"github.com/zyck/property-admin/internal/infrastructure/postgres"
	httpRouter "github.com/zyck/property-admin/internal/interfaces/http"
	"github.com/zyck/property-admin/internal/interfaces/http/view"
	"github.com/zyck/property-admin/pkg/config"
	"github.com/zyck/property-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.RunMigrations {
		applied, err := postgres.RunMigrations(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Strs("applied", applied).Msg("migraciones al día")
	}

	// Redis opcional: sin REDIS_ADDR los almacenes viven en memoria del proceso
	// y la caché de reportes solo deduplica cargas concurrentes.
	var rangeStore appdaterange.Store = cache.NewMemoryDateRangeStore()
	var revocations auth.RevocationStore = cache.NewMemoryRevocationStore()
	reportCache := cache.NewReportCache(nil, cfg.Redis.ReportCacheTTL)
	if cfg.Redis.Enabled() {
		client, err := cache.New(ctx, cfg.Redis.Addr)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		rangeStore = cache.NewRedisDateRangeStore(client)
		revocations = cache.NewRedisRevocationStore(client)
		reportCache = cache.NewReportCache(client, cfg.Redis.ReportCacheTTL)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis habilitado")
	}

	userRepo := postgres.NewUserRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	propertyRepo := postgres.NewPropertyRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	numbers := invoice.NewNumberGenerator(cfg.Invoice.Prefix)
	issuer := invoice.Issuer{
		CompanyName:   cfg.Invoice.CompanyName,
		Tagline:       cfg.Invoice.Tagline,
		SupportPhones: splitPipe(cfg.Invoice.SupportPhones),
		SupportEmails: splitPipe(cfg.Invoice.SupportEmails),
	}

	authUC := auth.NewAuthUseCase(userRepo, revocations, auth.SessionConfig{
		Secret: cfg.Session.Secret,
		Issuer: cfg.Session.Issuer,
		TTL:    cfg.Session.TTL(),
	})
	dateRangeUC := appdaterange.NewUseCase(rangeStore, cfg.Session.TTL())
	listingUC := reporting.NewListingUseCase(statsRepo, reportCache)
	provinceUC := reporting.NewProvinceUseCase(propertyRepo, reportCache)
	userUC := usecase.NewUserUseCase(userRepo, reportCache)
	propertyUC := usecase.NewPropertyUseCase(propertyRepo, cfg.Images.AllowedHosts, reportCache)
	createSaleUC := appsales.NewCreateSaleUseCase(txRunner, numbers, reportCache)
	tableUC := appsales.NewTableUseCase(saleRepo)
	exportUC := appsales.NewExportUseCase(tableUC, excel.NewSalesExporter())
	// PDF: factura de la venta con maroto
	pdfUC := appsales.NewPDFUseCase(saleRepo, infrapdf.NewMarotoPDFGenerator(), issuer)

	views, err := view.NewEngine()
	if err != nil {
		log.Fatal().Err(err).Msg("plantillas HTML")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Zyck Property Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Log:         log,
		AuthUC:      authUC,
		DateRangeUC: dateRangeUC,
		ListingUC:   listingUC,
		ProvinceUC:  provinceUC,
		UserUC:      userUC,
		PropertyUC:  propertyUC,
		CreateSale:  createSaleUC,
		SalesTable:  tableUC,
		SalesExport: exportUC,
		InvoicePDF:  pdfUC,
		Numbers:     numbers,
		Views:       views,
		Session: httpRouter.SessionOptions{
			CookieName:   cfg.Session.CookieName,
			CookieSecure: cfg.Session.CookieSecure,
			ProtectAPI:   cfg.Session.ProtectAPI,
		},
		RateLimitPerMinute: cfg.HTTP.RateLimitPerMinute,
		InvoiceDemoEnabled: cfg.Invoice.DemoEnabled,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// splitPipe "a | b" -> ["a", "b"].
func splitPipe(s string) []string {
	var out []string
	for _, part := range strings.Split(s, "|") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
