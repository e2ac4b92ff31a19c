package certificate_controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/certward/certward-api/api/middleware"
	"github.com/certward/certward-api/common"
	"github.com/certward/certward-api/common/util"
	"github.com/certward/certward-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// DownloadArchive streams the latest bulk ZIP built from a template.
func (ctrl *CertificateController) DownloadArchive(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	templateId := c.Params("templateId")

	tmpl, queryErr := ctrl.templates.GetById(templateId)
	if queryErr != nil {
		return response.SendInternalError(c, queryErr)
	}
	if tmpl == nil {
		return response.SendFailed(c, "Template not found")
	}
	if tmpl.UserID != userId {
		return response.SendUnauthorized(c, "Template belongs to another user")
	}

	if tmpl.ArchiveURL == "" {
		return response.SendFailed(c, "No archive has been generated for this template")
	}

	objectPath, extractErr := util.ExtractObjectNameFromURL(tmpl.ArchiveURL, *common.Config.BucketCertificate)
	if extractErr != nil {
		slog.Error("Archive download: failed to extract object path",
			"error", extractErr,
			"template_id", templateId,
			"archive_url", tmpl.ArchiveURL)
		return response.SendInternalError(c, extractErr)
	}

	ctx := context.Background()

	object, downloadErr := util.DownloadFile(ctx, *common.Config.BucketCertificate, objectPath)
	if downloadErr != nil {
		slog.Error("Archive download failed",
			"error", downloadErr,
			"template_id", templateId,
			"object_path", objectPath)
		return response.SendError(c, "Archive file not found")
	}
	defer object.Close()

	objectInfo, statErr := object.Stat()
	if statErr != nil {
		slog.Error("Archive download: failed to stat object",
			"error", statErr,
			"template_id", templateId,
			"object_path", objectPath)
		return response.SendInternalError(c, statErr)
	}

	pathParts := strings.Split(objectPath, "/")
	filename := pathParts[len(pathParts)-1]

	c.Set("Content-Type", "application/zip")
	c.Set("Content-Length", fmt.Sprintf("%d", objectInfo.Size))
	c.Set("Content-Disposition", "attachment; filename=\""+filename+"\"")

	if _, err := io.Copy(c.Response().BodyWriter(), object); err != nil {
		slog.Error("Archive download: stream failed",
			"error", err,
			"template_id", templateId,
			"object_path", objectPath)
		return response.SendInternalError(c, err)
	}

	slog.Info("Archive downloaded", "template_id", templateId, "size", objectInfo.Size)
	return nil
}
