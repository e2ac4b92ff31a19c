package template_controller

import (
	templatemodel "github.com/certward/certward-api/api/model/templateModel"
)

type TemplateController struct {
	templates templatemodel.ITemplateRepository
}

func NewTemplateController(templates templatemodel.ITemplateRepository) *TemplateController {
	return &TemplateController{templates: templates}
}
