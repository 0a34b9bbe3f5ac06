package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/zyck/property-admin/internal/application/usecase"
	"github.com/zyck/property-admin/internal/domain"
	"github.com/zyck/property-admin/pkg/logger"
)

// PropertyHandler publicaciones de un usuario.
type PropertyHandler struct {
	uc  *usecase.PropertyUseCase
	log *logger.Logger
}

// NewPropertyHandler construye el handler.
func NewPropertyHandler(uc *usecase.PropertyUseCase, log *logger.Logger) *PropertyHandler {
	return &PropertyHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Propiedades del usuario
// @Tags         properties
// @Produce      json
// @Param        id  query  string  true  "ID del usuario"
// @Success      200  {object}  dto.PropertiesResponse
// @Failure      400  {string}  string
// @Router       /api/properties [get]
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return text(c, fiber.StatusBadRequest, MsgMissingID)
	}
	out, err := h.uc.ListByUser(c.UserContext(), id)
	if err != nil {
		return internalText(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar propiedad
// @Tags         properties
// @Produce      plain
// @Param        id  query  int  true  "ID de la propiedad"
// @Success      200  {string}  string
// @Failure      400  {string}  string
// @Failure      404  {string}  string
// @Router       /api/properties [delete]
func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return text(c, fiber.StatusBadRequest, MsgMissingID)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return text(c, fiber.StatusBadRequest, "Invalid id query parameter")
		case errors.Is(err, domain.ErrNotFound):
			return text(c, fiber.StatusNotFound, MsgPropertyMissing)
		}
		return internalText(c, h.log, err)
	}
	return text(c, fiber.StatusOK, usecase.MessagePropertyDeleted)
}
