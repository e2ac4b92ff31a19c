package certificate_controller

import (
	"log/slog"

	recipientmodel "github.com/certward/certward-api/api/model/recipientModel"
	templatemodel "github.com/certward/certward-api/api/model/templateModel"
	"github.com/certward/certward-api/internal/renderer"
)

// pipelineStore adapts the repositories to the read-only view the render
// pipeline works against.
type pipelineStore struct {
	recipients recipientmodel.IRecipientRepository
	templates  templatemodel.ITemplateRepository
}

// NewPipelineStore exposes recipients and templates to the renderer.
func NewPipelineStore(recipients recipientmodel.IRecipientRepository, templates templatemodel.ITemplateRepository) renderer.Store {
	return &pipelineStore{recipients: recipients, templates: templates}
}

func (s *pipelineStore) GetRecipient(id string) (*renderer.Recipient, error) {
	recipient, err := s.recipients.GetById(id)
	if err != nil || recipient == nil {
		return nil, err
	}

	return &renderer.Recipient{
		ID:           recipient.ID,
		Name:         recipient.Name,
		Email:        recipient.Email,
		Course:       recipient.Course,
		IssueDate:    recipient.IssueDate,
		CustomFields: recipient.CustomFields,
	}, nil
}

func (s *pipelineStore) GetTemplate(id string) (*renderer.Template, error) {
	tmpl, err := s.templates.GetById(id)
	if err != nil || tmpl == nil {
		return nil, err
	}

	fields, parseErr := renderer.ParseFields(tmpl.Fields)
	if parseErr != nil {
		slog.Warn("Pipeline store: template fields failed to parse", "error", parseErr, "template_id", id)
		return nil, parseErr
	}

	return &renderer.Template{
		ID:       tmpl.ID,
		Name:     tmpl.Name,
		ImageURL: tmpl.ImageURL,
		Fields:   fields,
	}, nil
}
