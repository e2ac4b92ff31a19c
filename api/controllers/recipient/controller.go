package recipient_controller

import (
	certificatemodel "github.com/certward/certward-api/api/model/certificateModel"
	recipientmodel "github.com/certward/certward-api/api/model/recipientModel"
)

type RecipientController struct {
	recipients   recipientmodel.IRecipientRepository
	certificates certificatemodel.ICertificateRepository
}

func NewRecipientController(recipients recipientmodel.IRecipientRepository, certificates certificatemodel.ICertificateRepository) *RecipientController {
	return &RecipientController{recipients: recipients, certificates: certificates}
}
