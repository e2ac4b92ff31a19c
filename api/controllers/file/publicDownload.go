package file_controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/certward/certward-api/common"
	"github.com/certward/certward-api/common/util"
	"github.com/certward/certward-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// PublicDownload streams an object from one of the configured buckets. Only
// the resource and certificate buckets are reachable; object paths are not
// guessable for certificates since they embed the unguessable certificate ID.
func PublicDownload(c *fiber.Ctx) error {
	bucket := c.Params("bucket")
	objectPath := c.Params("*")

	if bucket == "" || objectPath == "" {
		return response.SendFailed(c, "Bucket and object path are required")
	}

	if bucket != *common.Config.BucketResource && bucket != *common.Config.BucketCertificate {
		slog.Warn("Public download attempt on unknown bucket", "bucket", bucket, "ip", c.IP())
		return response.SendFailed(c, "Unknown bucket")
	}

	ctx := context.Background()

	object, err := util.DownloadFile(ctx, bucket, objectPath)
	if err != nil {
		slog.Error("Public download failed", "error", err, "bucket", bucket, "object_path", objectPath)
		return response.SendError(c, "File not found")
	}
	defer object.Close()

	objectInfo, err := object.Stat()
	if err != nil {
		slog.Error("Public download: failed to stat object", "error", err, "bucket", bucket, "object_path", objectPath)
		return response.SendError(c, "File not found")
	}

	contentType := objectInfo.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	parts := strings.Split(objectPath, "/")
	filename := parts[len(parts)-1]

	c.Set("Content-Type", contentType)
	c.Set("Content-Length", fmt.Sprintf("%d", objectInfo.Size))
	c.Set("Content-Disposition", "inline; filename=\""+filename+"\"")

	if _, err := io.Copy(c.Response().BodyWriter(), object); err != nil {
		slog.Error("Public download: stream failed", "error", err, "bucket", bucket, "object_path", objectPath)
		return response.SendInternalError(c, err)
	}

	return nil
}
