package template_controller

import (
	"github.com/certward/certward-api/api/middleware"
	"github.com/certward/certward-api/type/response"
	"github.com/gofiber/fiber/v2"
)

func (tc *TemplateController) GetById(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	templateId := c.Params("templateId")

	tmpl, queryErr := tc.templates.GetById(templateId)
	if queryErr != nil {
		return response.SendInternalError(c, queryErr)
	}
	if tmpl == nil {
		return response.SendFailed(c, "Template not found")
	}

	if tmpl.UserID != userId {
		return response.SendUnauthorized(c, "Template belongs to another user")
	}

	return response.SendSuccess(c, "Template retrieved", tmpl)
}
