package templatemodel

import (
	"github.com/certward/certward-api/type/payload"
	"github.com/certward/certward-api/type/shared/model"
)

// ITemplateRepository defines the interface for template repository operations
type ITemplateRepository interface {
	Create(data payload.CreateTemplatePayload, userId string) (*model.Template, error)
	GetById(id string) (*model.Template, error)
	GetByUser(userId string) ([]*model.Template, error)
	Update(id string, data payload.UpdateTemplatePayload) (*model.Template, error)
	Delete(id string) (*model.Template, error)
	EditArchiveUrl(id string, archiveUrl string) error
}

// Ensure TemplateRepository implements ITemplateRepository
var _ ITemplateRepository = (*TemplateRepository)(nil)

// MockTemplateRepository is a mock implementation for testing
type MockTemplateRepository struct {
	CreateFunc         func(data payload.CreateTemplatePayload, userId string) (*model.Template, error)
	GetByIdFunc        func(id string) (*model.Template, error)
	GetByUserFunc      func(userId string) ([]*model.Template, error)
	UpdateFunc         func(id string, data payload.UpdateTemplatePayload) (*model.Template, error)
	DeleteFunc         func(id string) (*model.Template, error)
	EditArchiveUrlFunc func(id string, archiveUrl string) error
}

// Ensure MockTemplateRepository implements ITemplateRepository
var _ ITemplateRepository = (*MockTemplateRepository)(nil)

func NewMockTemplateRepository() *MockTemplateRepository {
	return &MockTemplateRepository{}
}

func (m *MockTemplateRepository) Create(data payload.CreateTemplatePayload, userId string) (*model.Template, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(data, userId)
	}
	return nil, nil
}

func (m *MockTemplateRepository) GetById(id string) (*model.Template, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(id)
	}
	return nil, nil
}

func (m *MockTemplateRepository) GetByUser(userId string) ([]*model.Template, error) {
	if m.GetByUserFunc != nil {
		return m.GetByUserFunc(userId)
	}
	return nil, nil
}

func (m *MockTemplateRepository) Update(id string, data payload.UpdateTemplatePayload) (*model.Template, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(id, data)
	}
	return nil, nil
}

func (m *MockTemplateRepository) Delete(id string) (*model.Template, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil, nil
}

func (m *MockTemplateRepository) EditArchiveUrl(id string, archiveUrl string) error {
	if m.EditArchiveUrlFunc != nil {
		return m.EditArchiveUrlFunc(id, archiveUrl)
	}
	return nil
}
