package recipient_controller

import (
	"log/slog"

	"github.com/certward/certward-api/api/middleware"
	"github.com/certward/certward-api/common/util"
	"github.com/certward/certward-api/type/payload"
	"github.com/certward/certward-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// Add inserts one or many recipient rows, typically the parsed content of an
// uploaded spreadsheet.
func (rc *RecipientController) Add(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	body := new(payload.AddRecipientsPayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendError(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	result, addErr := rc.recipients.Add(userId, body.Recipients)
	if addErr != nil {
		slog.Error("Recipient Add failed", "error", addErr, "user_id", userId)
		return response.SendError(c, "Failed to add recipients")
	}

	return response.SendSuccess(c, "Recipients added", fiber.Map{
		"recipients":    result.Created,
		"extras_failed": result.FailedExtrasIDs,
	})
}
