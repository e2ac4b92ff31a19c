package recipient_controller

import (
	"log/slog"

	"github.com/certward/certward-api/api/middleware"
	"github.com/certward/certward-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// Delete removes a recipient and cascades to every certificate issued to it.
func (rc *RecipientController) Delete(c *fiber.Ctx) error {
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

	deletedCerts, certErr := rc.certificates.DeleteByRecipient(recipientId)
	if certErr != nil {
		slog.Error("Recipient Delete certificate cascade failed", "error", certErr, "recipient_id", recipientId)
		return response.SendError(c, "Failed to delete recipient certificates")
	}

	deleted, deleteErr := rc.recipients.Delete(recipientId)
	if deleteErr != nil {
		return response.SendError(c, "Failed to delete recipient")
	}

	slog.Info("Recipient deleted",
		"recipient_id", recipientId,
		"user_id", userId,
		"certificates_deleted", deletedCerts)
	return response.SendSuccess(c, "Recipient deleted", fiber.Map{
		"recipient":            deleted,
		"certificates_deleted": deletedCerts,
	})
}
