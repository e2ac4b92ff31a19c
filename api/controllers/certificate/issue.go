package certificate_controller

import (
	"log/slog"

	"github.com/certward/certward-api/api/middleware"
	"github.com/certward/certward-api/common/util"
	"github.com/certward/certward-api/internal/renderer"
	"github.com/certward/certward-api/type/payload"
	"github.com/certward/certward-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// Issue creates a draft certificate for a recipient/template pair. The
// issue date defaults to the recipient's stored one when the payload leaves
// it empty.
func (ctrl *CertificateController) Issue(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	body := new(payload.IssueCertificatePayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendError(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	recipient, recipientErr := ctrl.recipients.GetById(body.RecipientID)
	if recipientErr != nil {
		return response.SendInternalError(c, recipientErr)
	}
	if recipient == nil {
		return response.SendFailed(c, "Recipient not found")
	}
	if recipient.UserID != userId {
		return response.SendUnauthorized(c, "Recipient belongs to another user")
	}

	tmpl, tmplErr := ctrl.templates.GetById(body.TemplateID)
	if tmplErr != nil {
		return response.SendInternalError(c, tmplErr)
	}
	if tmpl == nil {
		return response.SendFailed(c, "Template not found")
	}
	if tmpl.UserID != userId {
		return response.SendUnauthorized(c, "Template belongs to another user")
	}

	issueDate := body.IssueDate
	if issueDate == "" {
		issueDate = recipient.IssueDate
	}

	cert, issueErr := ctrl.certificates.Issue(body.RecipientID, body.TemplateID, issueDate)
	if issueErr != nil {
		return response.SendError(c, "Failed to issue certificate")
	}

	slog.Info("Certificate issued",
		"certificate_id", cert.ID,
		"recipient_id", body.RecipientID,
		"template_id", body.TemplateID,
		"user_id", userId)
	return response.SendSuccess(c, "Certificate issued", fiber.Map{
		"certificate":     cert,
		"verificationUrl": renderer.VerificationURL(ctrl.verifyHost, cert.ID),
	})
}
