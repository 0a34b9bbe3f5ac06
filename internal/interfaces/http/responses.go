package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/zyck/property-admin/internal/application/dto"
	"github.com/zyck/property-admin/internal/domain"
	"github.com/zyck/property-admin/internal/domain/daterange"
	"github.com/zyck/property-admin/pkg/logger"
)

// Cuerpos de texto plano de los endpoints de reportes; el panel los muestra tal cual.
const (
	MsgMissingRange    = "Missing startDate or endDate query parameters"
	MsgInvalidDate     = "Invalid date format"
	MsgInvertedRange   = "startDate must not be after endDate"
	MsgMissingID       = "Missing id query parameter"
	MsgInvalidStatus   = "Invalid status value"
	MsgInvalidPeriod   = "Invalid month or year"
	MsgNoProvinces     = "No properties found for the specified month and year"
	MsgUserNotFound    = "User not found"
	MsgPropertyMissing = "Property not found"
	MsgInvalidQuery    = "Invalid query parameters"
	MsgInternal        = "An Error Occurred"
)

// text responde texto plano con el status dado.
func text(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).SendString(msg)
}

// jsonError responde dto.ErrorResponse.
func jsonError(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

// internalText registra el error y responde 500 sin exponer el detalle.
func internalText(c *fiber.Ctx, log *logger.Logger, err error) error {
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error inesperado")
	return text(c, fiber.StatusInternalServerError, MsgInternal)
}

// internalJSON registra el error y responde 500 {"code":"INTERNAL"}.
func internalJSON(c *fiber.Ctx, log *logger.Logger, err error) error {
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error inesperado")
	return jsonError(c, fiber.StatusInternalServerError, "INTERNAL", "error interno")
}

// queryRange lee startDate/endDate obligatorios. Devuelve el mensaje 400 si falla.
func queryRange(c *fiber.Ctx) (daterange.Range, string) {
	r, err := daterange.Parse(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return daterange.Range{}, rangeMessage(err)
	}
	return r, ""
}

// optionalRange como queryRange pero sin parámetros devuelve el rango cero (todo).
func optionalRange(c *fiber.Ctx) (daterange.Range, string) {
	if c.Query("startDate") == "" && c.Query("endDate") == "" {
		return daterange.Range{}, ""
	}
	return queryRange(c)
}

func rangeMessage(err error) string {
	switch {
	case errors.Is(err, daterange.ErrMissingBounds):
		return MsgMissingRange
	case errors.Is(err, daterange.ErrInvertedRange):
		return MsgInvertedRange
	default:
		return MsgInvalidDate
	}
}

// isClientError errores de entrada que se responden con 400.
func isClientError(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrInvalidDateRange) ||
		errors.Is(err, domain.ErrInvalidStatus) ||
		errors.Is(err, domain.ErrInvalidPeriod)
}
