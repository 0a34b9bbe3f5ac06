package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/zyck/property-admin/pkg/logger"
)

// LocalRequestID key del id de petición en c.Locals.
const LocalRequestID = "request_id"

// RequestLogger registra método, ruta, status, latencia e id de petición.
// Reutiliza X-Request-ID si el cliente lo envía.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		rid := c.Get(fiber.HeaderXRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, rid)
		c.Locals(LocalRequestID, rid)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", rid).
			Msg("http")
		return err
	}
}
