package recipient_controller

import (
	"github.com/certward/certward-api/api/middleware"
	"github.com/certward/certward-api/type/response"
	"github.com/gofiber/fiber/v2"
)

func (rc *RecipientController) GetByUser(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	recipients, queryErr := rc.recipients.GetByUser(userId)
	if queryErr != nil {
		return response.SendInternalError(c, queryErr)
	}

	return response.SendSuccess(c, "Recipients retrieved", recipients)
}
