package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/zyck/property-admin/internal/application/dto"
	"github.com/zyck/property-admin/internal/application/usecase"
	"github.com/zyck/property-admin/internal/domain"
	"github.com/zyck/property-admin/pkg/logger"
)

// UserHandler listado y gestión de usuarios del marketplace.
type UserHandler struct {
	uc  *usecase.UserUseCase
	log *logger.Logger
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Usuarios no administradores creados en el rango
// @Tags         users
// @Produce      json
// @Param        startDate  query  string  true   "YYYY-MM-DD o RFC 3339"
// @Param        endDate    query  string  true   "YYYY-MM-DD o RFC 3339"
// @Param        search     query  string  false  "Nombre, email, teléfono o ciudad"
// @Param        sortField  query  string  false  "createdAt | firstName | email"
// @Param        sortDir    query  string  false  "asc | desc"
// @Param        page       query  int     false  "Página (1..)"
// @Param        pageSize   query  int     false  "5 | 10 | 25 | 50"
// @Success      200  {object}  dto.UsersResponse
// @Failure      400  {string}  string
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	r, msg := queryRange(c)
	if msg != "" {
		return text(c, fiber.StatusBadRequest, msg)
	}
	var q dto.UserListQuery
	if err := c.QueryParser(&q); err != nil {
		return text(c, fiber.StatusBadRequest, MsgInvalidQuery)
	}
	out, err := h.uc.ListInRange(c.UserContext(), r, q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return text(c, fiber.StatusBadRequest, MsgInvalidQuery)
		}
		return internalText(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar usuario (ventas y propiedades en cascada)
// @Tags         users
// @Produce      plain
// @Param        id  query  string  true  "ID del usuario"
// @Success      200  {string}  string
// @Failure      400  {string}  string
// @Failure      404  {string}  string
// @Router       /api/users [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return text(c, fiber.StatusBadRequest, MsgMissingID)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return text(c, fiber.StatusNotFound, MsgUserNotFound)
		}
		return internalText(c, h.log, err)
	}
	return text(c, fiber.StatusOK, usecase.MessageUserDeleted)
}

// SetActiveStatus godoc
// @Summary      Activar o desactivar usuario
// @Tags         users
// @Produce      plain
// @Param        id      query  string  true  "ID del usuario"
// @Param        status  query  string  true  "active | inactive"
// @Success      200  {string}  string
// @Failure      400  {string}  string
// @Failure      404  {string}  string
// @Router       /api/users/activeStatus [put]
func (h *UserHandler) SetActiveStatus(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return text(c, fiber.StatusBadRequest, MsgMissingID)
	}
	msg, err := h.uc.SetActiveStatus(c.UserContext(), id, c.Query("status"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			return text(c, fiber.StatusBadRequest, MsgInvalidStatus)
		case errors.Is(err, domain.ErrNotFound):
			return text(c, fiber.StatusNotFound, MsgUserNotFound)
		}
		return internalText(c, h.log, err)
	}
	return text(c, fiber.StatusOK, msg)
}
