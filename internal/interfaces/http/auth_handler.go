package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/zyck/property-admin/internal/application/auth"
	"github.com/zyck/property-admin/internal/application/dto"
	"github.com/zyck/property-admin/internal/domain"
	"github.com/zyck/property-admin/pkg/logger"
)

// AuthHandler inicio y cierre de sesión de administradores.
type AuthHandler struct {
	uc   *auth.AuthUseCase
	opts SessionOptions
	log  *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, opts SessionOptions, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, opts: opts, log: log}
}

// SignIn godoc
// @Summary      Iniciar sesión de administrador
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignInRequest  true  "email, password"
// @Success      200   {object}  dto.SignInResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/signin [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var in dto.SignInRequest
	if err := c.BodyParser(&in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.SignIn(c.UserContext(), in)
	if err != nil {
		status, code, msg, ok := signInFailure(err)
		if !ok {
			return internalJSON(c, h.log, err)
		}
		return jsonError(c, status, code, msg)
	}
	c.Cookie(h.opts.cookie(out.Token, out.Session.ExpiresAt))
	return c.JSON(out)
}

// signInFailure traduce los errores esperados del inicio de sesión.
func signInFailure(err error) (status int, code, msg string, ok bool) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION", "email y password son requeridos", true
	case errors.Is(err, auth.ErrNotAdmin):
		return fiber.StatusUnauthorized, "NOT_ADMIN", "You are not an Admin", true
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas", true
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN", "cuenta inactiva", true
	}
	return 0, "", "", false
}

// SignOut godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/auth/signout [post]
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	if err := h.uc.SignOut(c.UserContext(), sessionToken(c, h.opts)); err != nil {
		return internalJSON(c, h.log, err)
	}
	c.Cookie(h.opts.expiredCookie())
	return c.JSON(dto.MessageResponse{Message: "Signed out"})
}

// Session godoc
// @Summary      Sesión actual
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	s, exp := GetSession(c)
	if s == nil {
		return jsonError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "sin sesión")
	}
	return c.JSON(h.uc.Session(s, exp))
}
