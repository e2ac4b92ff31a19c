package auth_controller

import (
	"log/slog"

	"github.com/certward/certward-api/common/util"
	"github.com/certward/certward-api/type/payload"
	"github.com/certward/certward-api/type/response"
	"github.com/gofiber/fiber/v2"
)

func (ac *AuthController) Register(c *fiber.Ctx) error {
	body := new(payload.RegisterPayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendError(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	if dupUser, err := ac.users.GetByUsername(body.Username); dupUser != nil || err != nil {
		if dupUser != nil {
			return response.SendFailed(c, "User already existed")
		}
		slog.Error("Auth Register duplicate check failed", "error", err, "username", body.Username)
		return response.SendInternalError(c, err)
	}

	hashedPassword, hashErr := util.HashPassword(body.Password)
	if hashErr != nil {
		slog.Error("Auth Register password hashing failed", "error", hashErr)
		return response.SendError(c, "Password hashing failed")
	}

	createdUser, createErr := ac.users.Create(body.Username, hashedPassword, body.Firstname, body.Lastname)
	if createErr != nil {
		return response.SendError(c, "Failed to create user")
	}

	slog.Info("Auth Register successful", "username", createdUser.Username, "user_id", createdUser.ID)
	return response.SendSuccess(c, "User Registered", fiber.Map{
		"id":       createdUser.ID,
		"username": createdUser.Username,
	})
}
