package verify_controller

import (
	"log/slog"

	"github.com/certward/certward-api/type/response"
	"github.com/certward/certward-api/type/shared/model"
	"github.com/gofiber/fiber/v2"
)

// VerifyByEmail lists every published certificate held by an email address.
func (vc *VerifyController) VerifyByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return response.SendFailed(c, "Email is required")
	}

	recipients, queryErr := vc.recipients.GetByEmail(email)
	if queryErr != nil {
		return response.SendInternalError(c, queryErr)
	}

	var found []fiber.Map
	for _, recipient := range recipients {
		certs, certErr := vc.certificates.GetByRecipient(recipient.ID)
		if certErr != nil {
			return response.SendInternalError(c, certErr)
		}

		for _, cert := range certs {
			if cert.Status != model.CertificateStatusPublished {
				continue
			}

			templateName := ""
			if tmpl, tmplErr := vc.templates.GetById(cert.TemplateID); tmplErr == nil && tmpl != nil {
				templateName = tmpl.Name
			}

			found = append(found, fiber.Map{
				"certificateId": cert.ID,
				"recipientName": recipient.Name,
				"course":        recipient.Course,
				"issueDate":     cert.IssueDate,
				"template":      templateName,
			})
		}
	}

	if len(found) == 0 {
		slog.Info("Email verification found no certificates", "email", email)
		return response.SendFailed(c, "No certificates found for this email")
	}

	return response.SendSuccess(c, "Certificates found", found)
}
