package template_controller

import (
	"log/slog"

	"github.com/certward/certward-api/api/middleware"
	"github.com/certward/certward-api/internal/renderer"
	"github.com/certward/certward-api/type/payload"
	"github.com/certward/certward-api/type/response"
	"github.com/gofiber/fiber/v2"
)

func (tc *TemplateController) Update(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	templateId := c.Params("templateId")

	body := new(payload.UpdateTemplatePayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendError(c, "Failed to parse body")
	}

	if body.Fields != "" {
		if _, err := renderer.ParseFields(body.Fields); err != nil {
			slog.Warn("Template Update rejected invalid fields", "error", err, "template_id", templateId)
			return response.SendFailed(c, err.Error())
		}
	}

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

	tmpl, updateErr := tc.templates.Update(templateId, *body)
	if updateErr != nil {
		return response.SendError(c, "Failed to update template")
	}

	slog.Info("Template updated", "template_id", templateId, "user_id", userId)
	return response.SendSuccess(c, "Template updated", tmpl)
}
