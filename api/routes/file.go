package routes

import (
	file_controller "github.com/certward/certward-api/api/controllers/file"
	"github.com/certward/certward-api/api/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupFileRoutes(router fiber.Router, publicRouter fiber.Router) {
	fileGroup := router.Group("file")
	fileGroup.Use(middleware.Jwt())
	fileGroup.Post("upload/:type", file_controller.UploadResource)

	publicRouter.Get("files/download/:bucket/*", file_controller.PublicDownload)
}
