package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appdaterange "github.com/zyck/property-admin/internal/application/daterange"
	"github.com/zyck/property-admin/internal/application/dto"
	"github.com/zyck/property-admin/internal/domain"
	"github.com/zyck/property-admin/pkg/logger"
)

// DateRangeHandler rango de fechas seleccionado por la sesión.
type DateRangeHandler struct {
	uc  *appdaterange.UseCase
	log *logger.Logger
}

// NewDateRangeHandler construye el handler.
func NewDateRangeHandler(uc *appdaterange.UseCase, log *logger.Logger) *DateRangeHandler {
	return &DateRangeHandler{uc: uc, log: log}
}

func (h *DateRangeHandler) sessionID(c *fiber.Ctx) string {
	s, _ := GetSession(c)
	if s == nil {
		return ""
	}
	return s.SessionID
}

// Get godoc
// @Summary      Rango de fechas de la sesión
// @Tags         session
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DateRangeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/session/date-range [get]
func (h *DateRangeHandler) Get(c *fiber.Ctx) error {
	sid := h.sessionID(c)
	if sid == "" {
		return jsonError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "sin sesión")
	}
	out, err := h.uc.Get(c.UserContext(), sid)
	if err != nil {
		return internalJSON(c, h.log, err)
	}
	return c.JSON(out)
}

// Put godoc
// @Summary      Seleccionar rango de fechas
// @Tags         session
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DateRangeRequest  true  "startDate, endDate"
// @Success      200   {object}  dto.DateRangeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/session/date-range [put]
func (h *DateRangeHandler) Put(c *fiber.Ctx) error {
	sid := h.sessionID(c)
	if sid == "" {
		return jsonError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "sin sesión")
	}
	var in dto.DateRangeRequest
	if err := c.BodyParser(&in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Set(c.UserContext(), sid, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDateRange) {
			return jsonError(c, fiber.StatusBadRequest, "INVALID_DATE_RANGE", err.Error())
		}
		return internalJSON(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Limpiar rango de fechas
// @Tags         session
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DateRangeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/session/date-range [delete]
func (h *DateRangeHandler) Delete(c *fiber.Ctx) error {
	sid := h.sessionID(c)
	if sid == "" {
		return jsonError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "sin sesión")
	}
	if err := h.uc.Reset(c.UserContext(), sid); err != nil {
		return internalJSON(c, h.log, err)
	}
	return c.JSON(dto.DateRangeResponse{})
}
