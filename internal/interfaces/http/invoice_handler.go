package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/zyck/property-admin/internal/application/dto"
	appsales "github.com/zyck/property-admin/internal/application/sales"
	"github.com/zyck/property-admin/internal/domain"
	"github.com/zyck/property-admin/pkg/logger"
)

// InvoiceHandler numeración, PDF desde formulario y venta de demostración.
type InvoiceHandler struct {
	sales       *SalesHandler
	numbers     appsales.NumberGenerator
	pdf         *appsales.PDFUseCase
	demoEnabled bool
	log         *logger.Logger
}

// NewInvoiceHandler construye el handler. La venta de demostración solo responde con demoEnabled.
func NewInvoiceHandler(sales *SalesHandler, numbers appsales.NumberGenerator, pdf *appsales.PDFUseCase, demoEnabled bool, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{sales: sales, numbers: numbers, pdf: pdf, demoEnabled: demoEnabled, log: log}
}

// Demo godoc
// @Summary      Registrar la venta de demostración (solo desarrollo)
// @Tags         invoice
// @Produce      json
// @Success      200  {object}  dto.CreateSaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/invoice [post]
func (h *InvoiceHandler) Demo(c *fiber.Ctx) error {
	if !h.demoEnabled {
		return jsonError(c, fiber.StatusNotFound, "NOT_FOUND", "ruta no disponible")
	}
	out, err := h.sales.create.CreateDemoSale(c.UserContext())
	if err != nil {
		return h.sales.saleFailure(c, err)
	}
	return c.JSON(dto.CreateSaleResponse{Message: appsales.MessageSaleCreated, Invoice: *out})
}

// Number godoc
// @Summary      Nuevo número de factura
// @Tags         invoice
// @Produce      json
// @Success      200  {object}  dto.InvoiceNumberResponse
// @Router       /api/invoice/number [get]
func (h *InvoiceHandler) Number(c *fiber.Ctx) error {
	n, err := h.numbers.Next()
	if err != nil {
		return internalJSON(c, h.log, err)
	}
	return c.JSON(dto.InvoiceNumberResponse{InvoiceNumber: n})
}

// PDF godoc
// @Summary      Factura PDF desde el formulario (no persiste)
// @Tags         invoice
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.InvoicePDFRequest  true  "Datos de la factura"
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/invoice/pdf [post]
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	var in dto.InvoicePDFRequest
	if err := c.BodyParser(&in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	raw, filename, err := h.pdf.FromForm(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return jsonError(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
		}
		return internalJSON(c, h.log, err)
	}
	return sendFile(c, mimePDF, filename, raw)
}
