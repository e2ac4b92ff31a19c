package template_controller

import (
	"log/slog"

	"github.com/certward/certward-api/api/middleware"
	"github.com/certward/certward-api/common/util"
	"github.com/certward/certward-api/internal/renderer"
	"github.com/certward/certward-api/type/payload"
	"github.com/certward/certward-api/type/response"
	"github.com/gofiber/fiber/v2"
)

func (tc *TemplateController) Create(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	body := new(payload.CreateTemplatePayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendError(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	// Reject malformed field arrays before they reach the render pipeline
	if _, err := renderer.ParseFields(body.Fields); err != nil {
		slog.Warn("Template Create rejected invalid fields", "error", err, "user_id", userId)
		return response.SendFailed(c, err.Error())
	}

	tmpl, createErr := tc.templates.Create(*body, userId)
	if createErr != nil {
		return response.SendError(c, "Failed to create template")
	}

	slog.Info("Template created", "template_id", tmpl.ID, "user_id", userId)
	return response.SendSuccess(c, "Template created", tmpl)
}
