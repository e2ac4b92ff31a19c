package certificate_controller

import (
	certificatemodel "github.com/certward/certward-api/api/model/certificateModel"
	recipientmodel "github.com/certward/certward-api/api/model/recipientModel"
	templatemodel "github.com/certward/certward-api/api/model/templateModel"
	"github.com/certward/certward-api/internal/renderer"
)

type CertificateController struct {
	certificates certificatemodel.ICertificateRepository
	recipients   recipientmodel.IRecipientRepository
	templates    templatemodel.ITemplateRepository
	orchestrator *renderer.Orchestrator
	verifyHost   string
}

func NewCertificateController(
	certificates certificatemodel.ICertificateRepository,
	recipients recipientmodel.IRecipientRepository,
	templates templatemodel.ITemplateRepository,
	orchestrator *renderer.Orchestrator,
	verifyHost string,
) *CertificateController {
	return &CertificateController{
		certificates: certificates,
		recipients:   recipients,
		templates:    templates,
		orchestrator: orchestrator,
		verifyHost:   verifyHost,
	}
}
