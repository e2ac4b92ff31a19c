package template_controller

import (
	"log/slog"

	"github.com/certward/certward-api/api/middleware"
	"github.com/certward/certward-api/type/response"
	"github.com/gofiber/fiber/v2"
)

func (tc *TemplateController) Delete(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	templateId := c.Params("templateId")

	existing, queryErr := tc.templates.GetById(templateId)
	if queryErr != nil {
		return response.SendInternalError(c, queryErr)
	}
	if existing == nil {
		return response.SendFailed(c, "Template not found")
	}
	if existing.UserID != userId {
		return response.SendUnauthorized(c, "Template belongs to another user")
	}

	tmpl, deleteErr := tc.templates.Delete(templateId)
	if deleteErr != nil {
		return response.SendError(c, "Failed to delete template")
	}

	slog.Info("Template deleted", "template_id", templateId, "user_id", userId)
	return response.SendSuccess(c, "Template deleted", tmpl)
}
