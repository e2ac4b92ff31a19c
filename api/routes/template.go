package routes

import (
	template_controller "github.com/certward/certward-api/api/controllers/template"
	"github.com/certward/certward-api/api/middleware"
	templatemodel "github.com/certward/certward-api/api/model/templateModel"
	"github.com/gofiber/fiber/v2"
)

func SetupTemplateRoutes(router fiber.Router, templates templatemodel.ITemplateRepository) {
	tc := template_controller.NewTemplateController(templates)

	templateGroup := router.Group("template")

	templateGroup.Use(middleware.Jwt())

	templateGroup.Get("", tc.GetByUser)
	templateGroup.Get(":templateId", tc.GetById)
	templateGroup.Post("", tc.Create)
	templateGroup.Put(":templateId", tc.Update)
	templateGroup.Delete(":templateId", tc.Delete)
}
