package certificatemodel

import (
	"errors"
	"log/slog"

	"github.com/certward/certward-api/common/util"
	"github.com/certward/certward-api/type/shared/model"
	"gorm.io/gorm"
)

// Length of the public verification token used as the certificate ID.
const certificateIdLength = 12

// CertificateRepository handles certificate persistence in PostgreSQL.
type CertificateRepository struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{db: db}
}

// Issue creates a draft certificate for a recipient/template pair. The ID is
// a random short token so the verification URL is unguessable.
func (r *CertificateRepository) Issue(recipientId string, templateId string, issueDate string) (*model.Certificate, error) {
	cert := &model.Certificate{
		ID:          util.ShortID(certificateIdLength),
		RecipientID: recipientId,
		TemplateID:  templateId,
		Status:      model.CertificateStatusDraft,
		IssueDate:   issueDate,
	}

	createErr := r.db.Create(cert).Error

	if createErr != nil {
		slog.Error("Certificate Issue", "error", createErr, "recipient_id", recipientId, "template_id", templateId)
		return nil, createErr
	}

	return cert, nil
}

// GetById returns nil, nil when the certificate does not exist.
func (r *CertificateRepository) GetById(certId string) (*model.Certificate, error) {
	cert := new(model.Certificate)
	queryErr := r.db.Where("id = ?", certId).First(cert).Error

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Certificate GetById", "error", queryErr, "certificate_id", certId)
		return nil, queryErr
	}

	return cert, nil
}

func (r *CertificateRepository) GetByRecipient(recipientId string) ([]*model.Certificate, error) {
	var certs []*model.Certificate
	queryErr := r.db.Where("recipient_id = ?", recipientId).Find(&certs).Error

	if queryErr != nil {
		slog.Error("Certificate GetByRecipient", "error", queryErr, "recipient_id", recipientId)
		return nil, queryErr
	}

	return certs, nil
}

func (r *CertificateRepository) GetByTemplate(templateId string) ([]*model.Certificate, error) {
	var certs []*model.Certificate
	queryErr := r.db.Where("template_id = ?", templateId).Find(&certs).Error

	if queryErr != nil {
		slog.Error("Certificate GetByTemplate", "error", queryErr, "template_id", templateId)
		return nil, queryErr
	}

	return certs, nil
}

// Publish moves a certificate from draft to published, making it visible to
// the public verification endpoints.
func (r *CertificateRepository) Publish(certId string) (*model.Certificate, error) {
	cert, queryErr := r.GetById(certId)
	if queryErr != nil {
		return nil, queryErr
	}
	if cert == nil {
		return nil, errors.New("certificate not found")
	}

	updateErr := r.db.Model(&model.Certificate{}).Where("id = ?", certId).
		Update("status", model.CertificateStatusPublished).Error
	if updateErr != nil {
		slog.Error("Certificate Publish", "error", updateErr, "certificate_id", certId)
		return nil, updateErr
	}

	cert.Status = model.CertificateStatusPublished
	return cert, nil
}

// EditFileUrl records where the rendered PDF for this certificate lives.
func (r *CertificateRepository) EditFileUrl(certId string, fileUrl string) error {
	updateErr := r.db.Model(&model.Certificate{}).Where("id = ?", certId).
		Update("file_url", fileUrl).Error
	if updateErr != nil {
		slog.Error("Certificate EditFileUrl", "error", updateErr, "certificate_id", certId)
		return updateErr
	}
	return nil
}

func (r *CertificateRepository) Delete(certId string) (*model.Certificate, error) {
	cert, queryErr := r.GetById(certId)
	if queryErr != nil {
		return nil, queryErr
	}
	if cert == nil {
		return nil, errors.New("certificate not found")
	}

	deleteErr := r.db.Delete(cert).Error
	if deleteErr != nil {
		slog.Error("Certificate Delete", "error", deleteErr, "certificate_id", certId)
		return nil, deleteErr
	}

	return cert, nil
}

// DeleteByRecipient removes every certificate issued to a recipient. Used
// when the recipient itself is deleted.
func (r *CertificateRepository) DeleteByRecipient(recipientId string) (int64, error) {
	result := r.db.Where("recipient_id = ?", recipientId).Delete(&model.Certificate{})
	if result.Error != nil {
		slog.Error("Certificate DeleteByRecipient", "error", result.Error, "recipient_id", recipientId)
		return 0, result.Error
	}

	slog.Info("Certificate DeleteByRecipient", "recipient_id", recipientId, "deleted", result.RowsAffected)
	return result.RowsAffected, nil
}
