package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Recover turns handler panics into 500 responses instead of dropping the
// connection.
func Recover() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			slog.Error("Handler panic recovered",
				"panic", e,
				"path", c.Path(),
				"method", c.Method())
		},
	})
}
