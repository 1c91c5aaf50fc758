package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fee-details-api/pkg/logger"
)

// RequestLogger registra cada petición (método, ruta, status, duración) con zerolog.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Str("company_id", GetCompanyID(c)).
			Msg("request")
		return err
	}
}
