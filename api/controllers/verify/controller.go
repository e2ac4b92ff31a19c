package verify_controller

import (
	certificatemodel "github.com/certward/certward-api/api/model/certificateModel"
	recipientmodel "github.com/certward/certward-api/api/model/recipientModel"
	templatemodel "github.com/certward/certward-api/api/model/templateModel"
)

type VerifyController struct {
	certificates certificatemodel.ICertificateRepository
	recipients   recipientmodel.IRecipientRepository
	templates    templatemodel.ITemplateRepository
}

func NewVerifyController(
	certificates certificatemodel.ICertificateRepository,
	recipients recipientmodel.IRecipientRepository,
	templates templatemodel.ITemplateRepository,
) *VerifyController {
	return &VerifyController{
		certificates: certificates,
		recipients:   recipients,
		templates:    templates,
	}
}
