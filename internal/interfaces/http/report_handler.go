package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zyck/property-admin/internal/application/dto"
	"github.com/zyck/property-admin/internal/application/reporting"
	"github.com/zyck/property-admin/internal/domain"
	"github.com/zyck/property-admin/pkg/logger"
)

// ReportHandler conteos del dashboard y reporte de provincias.
type ReportHandler struct {
	listing   *reporting.ListingUseCase
	provinces *reporting.ProvinceUseCase
	log       *logger.Logger
	now       func() time.Time
}

// NewReportHandler construye el handler.
func NewReportHandler(listing *reporting.ListingUseCase, provinces *reporting.ProvinceUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{listing: listing, provinces: provinces, log: log, now: time.Now}
}

// Listing godoc
// @Summary      Conteos de usuarios y publicaciones en el rango
// @Tags         reports
// @Produce      json
// @Param        startDate  query  string  true  "YYYY-MM-DD o RFC 3339"
// @Param        endDate    query  string  true  "YYYY-MM-DD o RFC 3339"
// @Success      200  {object}  dto.ListingResponse
// @Failure      400  {string}  string
// @Router       /api/listing [get]
func (h *ReportHandler) Listing(c *fiber.Ctx) error {
	r, msg := queryRange(c)
	if msg != "" {
		return text(c, fiber.StatusBadRequest, msg)
	}
	out, err := h.listing.Listing(c.UserContext(), r)
	if err != nil {
		return internalText(c, h.log, err)
	}
	return c.JSON(out)
}

// Totals godoc
// @Summary      Totales globales de usuarios y publicaciones
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.TotalsResponse
// @Router       /api/listing/totals [get]
func (h *ReportHandler) Totals(c *fiber.Ctx) error {
	out, err := h.listing.Totals(c.UserContext())
	if err != nil {
		return internalText(c, h.log, err)
	}
	return c.JSON(out)
}

// Provinces godoc
// @Summary      Ubicaciones de propiedades creadas en el mes
// @Tags         reports
// @Produce      json
// @Param        month  query  int  false  "0..11 (0 = enero)"
// @Param        year   query  int  false  "Año de cuatro dígitos"
// @Success      200  {object}  dto.ProvincesResponse
// @Failure      400  {string}  string
// @Failure      404  {string}  string
// @Router       /api/provinces [get]
func (h *ReportHandler) Provinces(c *fiber.Ctx) error {
	p, err := reporting.ParsePeriod(c.Query("month"), c.Query("year"), h.now())
	if err != nil {
		return text(c, fiber.StatusBadRequest, MsgInvalidPeriod)
	}
	rows, err := h.provinces.List(c.UserContext(), p)
	if err != nil {
		if errors.Is(err, domain.ErrNoResults) {
			return text(c, fiber.StatusNotFound, MsgNoProvinces)
		}
		return internalText(c, h.log, err)
	}
	return c.JSON(dto.ProvincesResponse{Province: rows})
}

// ProvinceSummary godoc
// @Summary      Publicaciones por provincia en el mes
// @Tags         reports
// @Produce      json
// @Param        month  query  int  false  "0..11 (0 = enero)"
// @Param        year   query  int  false  "Año de cuatro dígitos"
// @Success      200  {object}  dto.ProvinceSummary
// @Failure      400  {string}  string
// @Router       /api/provinces/summary [get]
func (h *ReportHandler) ProvinceSummary(c *fiber.Ctx) error {
	p, err := reporting.ParsePeriod(c.Query("month"), c.Query("year"), h.now())
	if err != nil {
		return text(c, fiber.StatusBadRequest, MsgInvalidPeriod)
	}
	out, err := h.provinces.Summary(c.UserContext(), p)
	if err != nil {
		return internalText(c, h.log, err)
	}
	return c.JSON(out)
}
