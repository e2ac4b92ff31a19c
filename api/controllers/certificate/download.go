package certificate_controller

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/certward/certward-api/api/middleware"
	"github.com/certward/certward-api/internal/renderer"
	"github.com/certward/certward-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// Upper bound for a single interactive render.
const downloadTimeout = 2 * time.Minute

// Download renders one certificate on demand at full fidelity, QR included.
// ?format=png returns the raster, anything else the packed PDF.
func (ctrl *CertificateController) Download(c *fiber.Ctx) error {
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

	format := c.Query("format", "pdf")
	if format != "png" && format != "pdf" {
		return response.SendFailed(c, "Unsupported format, expected png or pdf")
	}

	ctx, cancel := context.WithTimeout(context.Background(), downloadTimeout)
	defer cancel()

	job := renderer.Job{
		CertificateID: cert.ID,
		RecipientID:   cert.RecipientID,
		TemplateID:    cert.TemplateID,
	}

	data, contentType, renderErr := ctrl.orchestrator.RenderSingle(ctx, job, format)
	if renderErr != nil {
		slog.Error("Certificate Download render failed",
			"error", renderErr,
			"certificate_id", certId,
			"format", format)
		return response.SendError(c, "Failed to render certificate")
	}

	filename := renderer.SanitizeFilename(recipient.Name)
	if filename == "" {
		filename = cert.ID
	}

	c.Set("Content-Type", contentType)
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s-certificate.%s\"", filename, format))

	slog.Info("Certificate downloaded", "certificate_id", certId, "format", format, "bytes", len(data))
	return c.Send(data)
}
