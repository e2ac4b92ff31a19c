package recipient_controller

import (
	"github.com/certward/certward-api/api/middleware"
	"github.com/certward/certward-api/type/response"
	"github.com/gofiber/fiber/v2"
)

func (rc *RecipientController) GetById(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	recipientId := c.Params("recipientId")

	recipient, queryErr := rc.recipients.GetById(recipientId)
	if queryErr != nil {
		return response.SendInternalError(c, queryErr)
	}
	if recipient == nil {
		return response.SendFailed(c, "Recipient not found")
	}

	if recipient.UserID != userId {
		return response.SendUnauthorized(c, "Recipient belongs to another user")
	}

	return response.SendSuccess(c, "Recipient retrieved", recipient)
}
