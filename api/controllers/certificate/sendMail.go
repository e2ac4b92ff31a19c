package certificate_controller

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/certward/certward-api/api/middleware"
	"github.com/certward/certward-api/common"
	"github.com/certward/certward-api/common/util"
	"github.com/certward/certward-api/internal/renderer"
	"github.com/certward/certward-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// DistributeByMail emails a recipient their certificate PDF. The PDF is
// rendered and stored on first distribution, then reused.
func (ctrl *CertificateController) DistributeByMail(c *fiber.Ctx) error {
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
	if recipient == nil {
		return response.SendFailed(c, "Recipient not found")
	}
	if recipient.UserID != userId {
		return response.SendUnauthorized(c, "Certificate belongs to another user")
	}

	if recipient.Email == "" {
		return response.SendFailed(c, "Recipient has no email address")
	}

	ctx, cancel := context.WithTimeout(context.Background(), downloadTimeout)
	defer cancel()

	fileUrl := cert.FileURL
	if fileUrl == "" {
		job := renderer.Job{
			CertificateID: cert.ID,
			RecipientID:   cert.RecipientID,
			TemplateID:    cert.TemplateID,
		}

		pdf, _, renderErr := ctrl.orchestrator.RenderSingle(ctx, job, "pdf")
		if renderErr != nil {
			slog.Error("Certificate mail render failed", "error", renderErr, "certificate_id", certId)
			return response.SendError(c, "Failed to render certificate")
		}

		objectName := fmt.Sprintf("certificates/%s.pdf", cert.ID)
		uploadedUrl, uploadErr := util.UploadBytes(ctx, *common.Config.BucketCertificate, objectName, pdf, "application/pdf")
		if uploadErr != nil {
			slog.Error("Certificate mail upload failed", "error", uploadErr, "certificate_id", certId)
			return response.SendError(c, "Failed to store certificate")
		}

		if urlErr := ctrl.certificates.EditFileUrl(cert.ID, uploadedUrl); urlErr != nil {
			slog.Warn("Certificate mail file URL update failed", "error", urlErr, "certificate_id", certId)
		}

		fileUrl = uploadedUrl
	}

	verificationUrl := renderer.VerificationURL(ctrl.verifyHost, cert.ID)

	if mailErr := util.SendCertificateMail(recipient.Email, recipient.Name, fileUrl, verificationUrl); mailErr != nil {
		slog.Error("Certificate mail send failed", "error", mailErr, "certificate_id", certId)
		return response.SendError(c, "Failed to send certificate mail")
	}

	slog.Info("Certificate mailed", "certificate_id", certId, "recipient", recipient.Email)
	return response.SendSuccess(c, "Certificate sent", fiber.Map{
		"certificateId": cert.ID,
		"email":         recipient.Email,
	})
}
