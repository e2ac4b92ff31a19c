package certificatemodel

import (
	"github.com/certward/certward-api/type/shared/model"
)

// ICertificateRepository defines the interface for certificate repository operations
type ICertificateRepository interface {
	Issue(recipientId string, templateId string, issueDate string) (*model.Certificate, error)
	GetById(certId string) (*model.Certificate, error)
	GetByRecipient(recipientId string) ([]*model.Certificate, error)
	GetByTemplate(templateId string) ([]*model.Certificate, error)
	Publish(certId string) (*model.Certificate, error)
	EditFileUrl(certId string, fileUrl string) error
	Delete(certId string) (*model.Certificate, error)
	DeleteByRecipient(recipientId string) (int64, error)
}

// Ensure CertificateRepository implements ICertificateRepository
var _ ICertificateRepository = (*CertificateRepository)(nil)

// MockCertificateRepository is a mock implementation for testing
type MockCertificateRepository struct {
	IssueFunc             func(recipientId string, templateId string, issueDate string) (*model.Certificate, error)
	GetByIdFunc           func(certId string) (*model.Certificate, error)
	GetByRecipientFunc    func(recipientId string) ([]*model.Certificate, error)
	GetByTemplateFunc     func(templateId string) ([]*model.Certificate, error)
	PublishFunc           func(certId string) (*model.Certificate, error)
	EditFileUrlFunc       func(certId string, fileUrl string) error
	DeleteFunc            func(certId string) (*model.Certificate, error)
	DeleteByRecipientFunc func(recipientId string) (int64, error)
}

// Ensure MockCertificateRepository implements ICertificateRepository
var _ ICertificateRepository = (*MockCertificateRepository)(nil)

func NewMockCertificateRepository() *MockCertificateRepository {
	return &MockCertificateRepository{}
}

func (m *MockCertificateRepository) Issue(recipientId string, templateId string, issueDate string) (*model.Certificate, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(recipientId, templateId, issueDate)
	}
	return nil, nil
}

func (m *MockCertificateRepository) GetById(certId string) (*model.Certificate, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(certId)
	}
	return nil, nil
}

func (m *MockCertificateRepository) GetByRecipient(recipientId string) ([]*model.Certificate, error) {
	if m.GetByRecipientFunc != nil {
		return m.GetByRecipientFunc(recipientId)
	}
	return nil, nil
}

func (m *MockCertificateRepository) GetByTemplate(templateId string) ([]*model.Certificate, error) {
	if m.GetByTemplateFunc != nil {
		return m.GetByTemplateFunc(templateId)
	}
	return nil, nil
}

func (m *MockCertificateRepository) Publish(certId string) (*model.Certificate, error) {
	if m.PublishFunc != nil {
		return m.PublishFunc(certId)
	}
	return nil, nil
}

func (m *MockCertificateRepository) EditFileUrl(certId string, fileUrl string) error {
	if m.EditFileUrlFunc != nil {
		return m.EditFileUrlFunc(certId, fileUrl)
	}
	return nil
}

func (m *MockCertificateRepository) Delete(certId string) (*model.Certificate, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(certId)
	}
	return nil, nil
}

func (m *MockCertificateRepository) DeleteByRecipient(recipientId string) (int64, error) {
	if m.DeleteByRecipientFunc != nil {
		return m.DeleteByRecipientFunc(recipientId)
	}
	return 0, nil
}
