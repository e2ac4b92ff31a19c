package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"

	"github.com/certward/certward-api/common"
	"github.com/certward/certward-api/type/response"
	"github.com/certward/certward-api/type/shared"
)

// Jwt guards a route group with bearer-token authentication. The parsed
// token lands in Locals under "auth" for GetUserFromContext.
func Jwt() fiber.Handler {
	conf := jwtware.Config{
		SigningKey:  []byte(*common.Config.JWTSecret),
		TokenLookup: "header:Authorization",
		AuthScheme:  "Bearer",
		ContextKey:  "auth",
		Claims:      new(shared.UserClaims),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			slog.Warn("JWT validation failed",
				"error", err,
				"path", c.Path(),
				"method", c.Method(),
				"ip", c.IP())
			return response.SendUnauthorized(c, "Invalid or expired token")
		},
	}
	return jwtware.New(conf)
}
