package verify_controller

import (
	"log/slog"

	"github.com/certward/certward-api/type/response"
	"github.com/certward/certward-api/type/shared/model"
	"github.com/gofiber/fiber/v2"
)

// VerifyById confirms a certificate's authenticity by its public token.
// Draft certificates are indistinguishable from nonexistent ones so the
// token leaks nothing before publication.
func (vc *VerifyController) VerifyById(c *fiber.Ctx) error {
	certId := c.Params("certId")

	cert, queryErr := vc.certificates.GetById(certId)
	if queryErr != nil {
		return response.SendInternalError(c, queryErr)
	}
	if cert == nil || cert.Status != model.CertificateStatusPublished {
		slog.Info("Verification failed", "certificate_id", certId)
		return response.SendFailed(c, "Certificate not found")
	}

	recipient, recipientErr := vc.recipients.GetById(cert.RecipientID)
	if recipientErr != nil {
		return response.SendInternalError(c, recipientErr)
	}
	if recipient == nil {
		slog.Warn("Verification found orphaned certificate", "certificate_id", certId)
		return response.SendFailed(c, "Certificate not found")
	}

	templateName := ""
	if tmpl, tmplErr := vc.templates.GetById(cert.TemplateID); tmplErr == nil && tmpl != nil {
		templateName = tmpl.Name
	}

	slog.Info("Certificate verified", "certificate_id", certId)
	return response.SendSuccess(c, "Certificate is valid", fiber.Map{
		"certificateId": cert.ID,
		"recipientName": recipient.Name,
		"course":        recipient.Course,
		"issueDate":     cert.IssueDate,
		"template":      templateName,
		"fileUrl":       cert.FileURL,
	})
}
