package file_controller

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/certward/certward-api/common"
	"github.com/certward/certward-api/common/util"
	"github.com/certward/certward-api/type/response"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxUploadBytes = 15 * 1024 * 1024

// UploadResource stores a template background or decorative graphic and
// returns the proxy URL to embed in template designs.
func UploadResource(c *fiber.Ctx) error {
	resourceType := c.Params("type")

	if resourceType != "background" && resourceType != "graphic" {
		return response.SendFailed(c, "Invalid resource type")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return response.SendFailed(c, "No file provided")
	}

	if file.Size > maxUploadBytes {
		return response.SendFailed(c, fmt.Sprintf("File size too large (%dMB out of 15MB)", file.Size/(1024*1024)))
	}

	ext := filepath.Ext(file.Filename)
	objName := fmt.Sprintf("%s_%d_%s%s", resourceType, time.Now().Unix(), uuid.New().String(), ext)

	ctx := context.Background()

	fileURL, err := util.UploadFile(ctx, *common.Config.BucketResource, objName, file)
	if err != nil {
		return response.SendInternalError(c, err)
	}

	// Clients reach objects through the backend proxy, never MinIO directly
	proxyURL, err := util.ConvertToProxyURL(fileURL, *common.Config.BucketResource)
	if err != nil {
		proxyURL = fileURL
	}

	return response.SendSuccess(c, "Resource uploaded", fiber.Map{
		"filename":    file.Filename,
		"object_name": objName,
		"url":         proxyURL,
		"size":        file.Size,
	})
}
