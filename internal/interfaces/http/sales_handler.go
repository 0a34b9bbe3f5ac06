package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/zyck/property-admin/internal/application/dto"
	appsales "github.com/zyck/property-admin/internal/application/sales"
	"github.com/zyck/property-admin/internal/domain"
	"github.com/zyck/property-admin/pkg/logger"
)

// MIME de las descargas.
const (
	mimePDF  = "application/pdf"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// SalesHandler alta de ventas, tabla, gráficas, exportación y PDF por número.
type SalesHandler struct {
	create *appsales.CreateSaleUseCase
	table  *appsales.TableUseCase
	export *appsales.ExportUseCase
	pdf    *appsales.PDFUseCase
	log    *logger.Logger
}

// NewSalesHandler construye el handler.
func NewSalesHandler(create *appsales.CreateSaleUseCase, table *appsales.TableUseCase, export *appsales.ExportUseCase, pdf *appsales.PDFUseCase, log *logger.Logger) *SalesHandler {
	return &SalesHandler{create: create, table: table, export: export, pdf: pdf, log: log}
}

// Create godoc
// @Summary      Registrar venta (crea el usuario si no existe)
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Venta"
// @Success      200   {object}  dto.CreateSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.create.CreateSale(c.UserContext(), in)
	if err != nil {
		return h.saleFailure(c, err)
	}
	return c.JSON(dto.CreateSaleResponse{Message: appsales.MessageSaleCreated, Invoice: *out})
}

// saleFailure errores del alta de venta.
func (h *SalesHandler) saleFailure(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return jsonError(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, appsales.ErrInvoiceTaken):
		return jsonError(c, fiber.StatusConflict, "INVOICE_TAKEN", "el número de factura ya existe")
	case errors.Is(err, appsales.ErrEmailTaken):
		return jsonError(c, fiber.StatusConflict, "EMAIL_TAKEN", "el email ya pertenece a otro usuario")
	}
	return internalJSON(c, h.log, err)
}

// Table godoc
// @Summary      Tabla de ventas filtrada, ordenada y paginada
// @Tags         sales
// @Produce      json
// @Param        startDate      query  string  false  "YYYY-MM-DD"
// @Param        endDate        query  string  false  "YYYY-MM-DD"
// @Param        search         query  string  false  "Búsqueda"
// @Param        sortField      query  string  false  "invoiceNo | propertyTitle | paymentAmount | paymentMethod | paymentGender | createdAt"
// @Param        sortDir        query  string  false  "asc | desc"
// @Param        page           query  int     false  "Página (1..)"
// @Param        pageSize       query  int     false  "5 | 10 | 25 | 50"
// @Param        viewportWidth  query  int     false  "Ancho en px para columnas visibles"
// @Success      200  {object}  dto.SalesTableResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SalesHandler) Table(c *fiber.Ctx) error {
	r, msg := optionalRange(c)
	if msg != "" {
		return jsonError(c, fiber.StatusBadRequest, "INVALID_DATE_RANGE", msg)
	}
	var q dto.SalesTableQuery
	if err := c.QueryParser(&q); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "INVALID_QUERY", MsgInvalidQuery)
	}
	out, err := h.table.List(c.UserContext(), r, q)
	if err != nil {
		if isClientError(err) {
			return jsonError(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
		}
		return internalJSON(c, h.log, err)
	}
	return c.JSON(out)
}

// Charts godoc
// @Summary      Cubetas mensual y por día de la semana
// @Tags         sales
// @Produce      json
// @Param        startDate  query  string  false  "YYYY-MM-DD"
// @Param        endDate    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.ChartsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/charts [get]
func (h *SalesHandler) Charts(c *fiber.Ctx) error {
	r, msg := optionalRange(c)
	if msg != "" {
		return jsonError(c, fiber.StatusBadRequest, "INVALID_DATE_RANGE", msg)
	}
	out, err := h.table.Charts(c.UserContext(), r)
	if err != nil {
		return internalJSON(c, h.log, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar ventas a Excel
// @Tags         sales
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        startDate  query  string  false  "YYYY-MM-DD"
// @Param        endDate    query  string  false  "YYYY-MM-DD"
// @Param        search     query  string  false  "Búsqueda"
// @Param        sortField  query  string  false  "Campo de orden"
// @Param        sortDir    query  string  false  "asc | desc"
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/export [get]
func (h *SalesHandler) Export(c *fiber.Ctx) error {
	r, msg := optionalRange(c)
	if msg != "" {
		return jsonError(c, fiber.StatusBadRequest, "INVALID_DATE_RANGE", msg)
	}
	raw, filename, err := h.export.Export(c.UserContext(), r, c.Query("search"), c.Query("sortField"), c.Query("sortDir"))
	if err != nil {
		if isClientError(err) {
			return jsonError(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
		}
		return internalJSON(c, h.log, err)
	}
	return sendFile(c, mimeXLSX, filename, raw)
}

// PDF godoc
// @Summary      Factura PDF de una venta registrada
// @Tags         sales
// @Produce      application/pdf
// @Param        invoiceNo  path  string  true  "Número de factura"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{invoiceNo}/pdf [get]
func (h *SalesHandler) PDF(c *fiber.Ctx) error {
	raw, filename, err := h.pdf.FromRecord(c.UserContext(), c.Params("invoiceNo"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return jsonError(c, fiber.StatusNotFound, "NOT_FOUND", "factura no encontrada")
		case errors.Is(err, domain.ErrInvalidInput):
			return jsonError(c, fiber.StatusBadRequest, "VALIDATION", "invoiceNo requerido")
		}
		return internalJSON(c, h.log, err)
	}
	return sendFile(c, mimePDF, filename, raw)
}

// sendFile responde un adjunto descargable.
func sendFile(c *fiber.Ctx, mime, filename string, raw []byte) error {
	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(raw)
}
