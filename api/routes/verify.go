package routes

import (
	verify_controller "github.com/certward/certward-api/api/controllers/verify"
	certificatemodel "github.com/certward/certward-api/api/model/certificateModel"
	recipientmodel "github.com/certward/certward-api/api/model/recipientModel"
	templatemodel "github.com/certward/certward-api/api/model/templateModel"
	"github.com/gofiber/fiber/v2"
)

func SetupVerifyRoutes(
	router fiber.Router,
	certificates certificatemodel.ICertificateRepository,
	recipients recipientmodel.IRecipientRepository,
	templates templatemodel.ITemplateRepository,
) {
	vc := verify_controller.NewVerifyController(certificates, recipients, templates)

	verifyGroup := router.Group("verify")

	verifyGroup.Get(":certId", vc.VerifyById)
	verifyGroup.Get("email/:email", vc.VerifyByEmail)
}
