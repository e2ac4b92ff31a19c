package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/certward/certward-api/type/shared"
)

// GetUserFromContext extracts the authenticated user ID. It reads the token
// parsed by the Jwt middleware, falling back to a plain "user_id" local so
// controller tests can inject an identity without minting tokens.
func GetUserFromContext(c *fiber.Ctx) (string, bool) {
	if token, ok := c.Locals("auth").(*jwt.Token); ok {
		if claims, ok := token.Claims.(*shared.UserClaims); ok {
			if claims.UserId != nil && *claims.UserId != "" {
				return *claims.UserId, true
			}
		}
	}

	if userId, ok := c.Locals("user_id").(string); ok && userId != "" {
		return userId, true
	}

	return "", false
}
