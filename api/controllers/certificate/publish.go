package certificate_controller

import (
	"log/slog"

	"github.com/certward/certward-api/api/middleware"
	"github.com/certward/certward-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// Publish makes a certificate visible to the public verification endpoints.
func (ctrl *CertificateController) Publish(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	certId := c.Params("certId")

	cert, queryErr := ctrl.certificates.GetById(certId)
	if queryErr != nil {
		return response.SendInternalError(c, queryErr)
	}
	if cert == nil {
		return response.SendFailed(c, "Certificate not found")
	}

	recipient, recipientErr := ctrl.recipients.GetById(cert.RecipientID)
	if recipientErr != nil {
		return response.SendInternalError(c, recipientErr)
	}
	if recipient == nil || recipient.UserID != userId {
		return response.SendUnauthorized(c, "Certificate belongs to another user")
	}

	published, publishErr := ctrl.certificates.Publish(certId)
	if publishErr != nil {
		return response.SendError(c, "Failed to publish certificate")
	}

	slog.Info("Certificate published", "certificate_id", certId, "user_id", userId)
	return response.SendSuccess(c, "Certificate published", published)
}
