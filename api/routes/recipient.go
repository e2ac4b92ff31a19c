package routes

import (
	recipient_controller "github.com/certward/certward-api/api/controllers/recipient"
	"github.com/certward/certward-api/api/middleware"
	certificatemodel "github.com/certward/certward-api/api/model/certificateModel"
	recipientmodel "github.com/certward/certward-api/api/model/recipientModel"
	"github.com/gofiber/fiber/v2"
)

func SetupRecipientRoutes(router fiber.Router, recipients recipientmodel.IRecipientRepository, certificates certificatemodel.ICertificateRepository) {
	rc := recipient_controller.NewRecipientController(recipients, certificates)

	recipientGroup := router.Group("recipient")

	recipientGroup.Use(middleware.Jwt())

	recipientGroup.Get("", rc.GetByUser)
	recipientGroup.Get(":recipientId", rc.GetById)
	recipientGroup.Post("", rc.Add)
	recipientGroup.Delete(":recipientId", rc.Delete)
}
