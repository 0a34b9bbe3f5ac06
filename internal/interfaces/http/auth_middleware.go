package http

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zyck/property-admin/internal/application/auth"
	"github.com/zyck/property-admin/internal/domain"
	"github.com/zyck/property-admin/pkg/jwt"
	"github.com/zyck/property-admin/pkg/logger"
)

// Locals keys de la sesión en Fiber.
const (
	LocalSession    = "session"
	LocalSessionExp = "session_exp"
)

// SessionOptions cookie de sesión y alcance de la protección.
type SessionOptions struct {
	CookieName   string
	CookieSecure bool
	// ProtectAPI exige sesión también en /api (401 JSON en lugar de redirect).
	ProtectAPI bool
}

func (o SessionOptions) cookieName() string {
	if o.CookieName == "" {
		return "zyck_session"
	}
	return o.CookieName
}

// cookie con el token emitido.
func (o SessionOptions) cookie(token string, exp time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     o.cookieName(),
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HTTPOnly: true,
		Secure:   o.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

// expiredCookie borra la cookie en el navegador.
func (o SessionOptions) expiredCookie() *fiber.Cookie {
	c := o.cookie("", time.Unix(0, 0))
	c.MaxAge = -1
	return c
}

// publicPaths rutas de página accesibles sin sesión.
var publicPaths = []string{"/signin", "/health", "/docs", "/favicon.ico"}

func isPublic(path string) bool {
	for _, p := range publicPaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return strings.HasPrefix(path, "/api/auth/")
}

// SessionGate carga la sesión de administrador (cookie o Bearer) en c.Locals.
// Páginas sin sesión válida: 302 a /signin?callbackUrl=<ruta>. /api queda exento
// salvo con ProtectAPI, que responde 401.
func SessionGate(uc *auth.AuthUseCase, opts SessionOptions, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := sessionToken(c, opts)
		if token != "" {
			s, exp, err := uc.Authenticate(c.UserContext(), token)
			switch {
			case err == nil:
				c.Locals(LocalSession, s)
				c.Locals(LocalSessionExp, exp)
				return c.Next()
			case !errors.Is(err, domain.ErrUnauthorized):
				log.Error().Err(err).Msg("verificar sesión")
			}
		}

		path := c.Path()
		if isPublic(path) {
			return c.Next()
		}
		if path == "/api" || strings.HasPrefix(path, "/api/") {
			if !opts.ProtectAPI {
				return c.Next()
			}
			return jsonError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "sesión de administrador requerida")
		}
		return c.Redirect("/signin?callbackUrl="+url.QueryEscape(c.OriginalURL()), fiber.StatusFound)
	}
}

// sessionToken cookie de sesión o, en su defecto, Authorization: Bearer.
func sessionToken(c *fiber.Ctx, opts SessionOptions) string {
	if v := c.Cookies(opts.cookieName()); v != "" {
		return v
	}
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// GetSession sesión cargada por SessionGate; nil si no hay.
func GetSession(c *fiber.Ctx) (*jwt.Session, time.Time) {
	s, _ := c.Locals(LocalSession).(*jwt.Session)
	exp, _ := c.Locals(LocalSessionExp).(time.Time)
	return s, exp
}

// safeCallback acepta solo rutas locales; cualquier otra cosa vuelve a "/".
func safeCallback(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return "/"
	}
	return raw
}
