package templatemodel

import (
	"errors"
	"log/slog"

	"github.com/certward/certward-api/type/payload"
	"github.com/certward/certward-api/type/shared/model"
	"gorm.io/gorm"
)

// TemplateRepository handles template persistence in PostgreSQL.
type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) Create(data payload.CreateTemplatePayload, userId string) (*model.Template, error) {
	tmpl := &model.Template{
		UserID:   userId,
		Name:     data.Name,
		ImageURL: data.ImageURL,
		Fields:   data.Fields,
		Width:    data.Width,
		Height:   data.Height,
	}

	createErr := r.db.Create(tmpl).Error

	if createErr != nil {
		slog.Error("Template Create", "error", createErr, "user_id", userId)
		return nil, createErr
	}

	return tmpl, nil
}

func (r *TemplateRepository) GetById(id string) (*model.Template, error) {
	tmpl := new(model.Template)
	queryErr := r.db.Where("id = ?", id).First(tmpl).Error

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Template GetById", "error", queryErr, "template_id", id)
		return nil, queryErr
	}

	return tmpl, nil
}

func (r *TemplateRepository) GetByUser(userId string) ([]*model.Template, error) {
	var templates []*model.Template
	queryErr := r.db.Where("user_id = ?", userId).Order("created_at DESC").Find(&templates).Error

	if queryErr != nil {
		slog.Error("Template GetByUser", "error", queryErr, "user_id", userId)
		return nil, queryErr
	}

	return templates, nil
}

// Update applies only the fields present in the payload; empty strings and
// zero dimensions leave the stored value untouched.
func (r *TemplateRepository) Update(id string, data payload.UpdateTemplatePayload) (*model.Template, error) {
	tmpl, queryErr := r.GetById(id)
	if queryErr != nil {
		return nil, queryErr
	}
	if tmpl == nil {
		return nil, errors.New("template not found")
	}

	updates := make(map[string]any)
	if data.Name != "" {
		updates["name"] = data.Name
	}
	if data.ImageURL != "" {
		updates["image_url"] = data.ImageURL
	}
	if data.Fields != "" {
		updates["fields"] = data.Fields
	}
	if data.Width > 0 {
		updates["width"] = data.Width
	}
	if data.Height > 0 {
		updates["height"] = data.Height
	}

	if len(updates) == 0 {
		return tmpl, nil
	}

	updateErr := r.db.Model(&model.Template{}).Where("id = ?", id).Updates(updates).Error
	if updateErr != nil {
		slog.Error("Template Update", "error", updateErr, "template_id", id)
		return nil, updateErr
	}

	return r.GetById(id)
}

func (r *TemplateRepository) Delete(id string) (*model.Template, error) {
	tmpl, queryErr := r.GetById(id)
	if queryErr != nil {
		return nil, queryErr
	}
	if tmpl == nil {
		return nil, errors.New("template not found")
	}

	deleteErr := r.db.Delete(tmpl).Error
	if deleteErr != nil {
		slog.Error("Template Delete", "error", deleteErr, "template_id", id)
		return nil, deleteErr
	}

	return tmpl, nil
}

// EditArchiveUrl records the URL of the latest bulk archive built from this
// template.
func (r *TemplateRepository) EditArchiveUrl(id string, archiveUrl string) error {
	updateErr := r.db.Model(&model.Template{}).Where("id = ?", id).Update("archive_url", archiveUrl).Error
	if updateErr != nil {
		slog.Error("Template EditArchiveUrl", "error", updateErr, "template_id", id)
		return updateErr
	}
	return nil
}
