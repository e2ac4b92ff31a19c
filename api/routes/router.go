package routes

import (
	"log/slog"
	"os"

	certificate_controller "github.com/certward/certward-api/api/controllers/certificate"
	certificatemodel "github.com/certward/certward-api/api/model/certificateModel"
	recipientmodel "github.com/certward/certward-api/api/model/recipientModel"
	templatemodel "github.com/certward/certward-api/api/model/templateModel"
	usermodel "github.com/certward/certward-api/api/model/userModel"
	"github.com/certward/certward-api/common"
	"github.com/certward/certward-api/internal/renderer"
	"github.com/gofiber/fiber/v2"
)

func Init(router fiber.Router) {
	users := usermodel.NewUserRepository(common.Gorm)
	templates := templatemodel.NewTemplateRepository(common.Gorm)
	recipients := recipientmodel.NewRecipientRepository(common.Gorm, common.Mongo)
	certificates := certificatemodel.NewCertificateRepository(common.Gorm)

	signer, signerErr := renderer.NewCertificateSigner()
	if signerErr != nil {
		slog.Error("Failed to initialize certificate signer", "error", signerErr)
		os.Exit(1)
	}

	workers := 0
	if common.Config.RenderWorkers != nil {
		workers = *common.Config.RenderWorkers
	}

	orchestrator := renderer.New(
		certificate_controller.NewPipelineStore(recipients, templates),
		renderer.NewRasterizer(),
		renderer.NewPDFPacker(signer),
		*common.Config.VerifyHost,
		workers,
	)

	api := router.Group("api")

	publicGroup := api.Group("public")
	SetupAuthRoutes(publicGroup, users)
	SetupVerifyRoutes(publicGroup, certificates, recipients, templates)
	SetupFileRoutes(api, publicGroup)

	SetupTemplateRoutes(api, templates)
	SetupRecipientRoutes(api, recipients, certificates)
	SetupCertificateRoutes(api, certificates, recipients, templates, orchestrator)
}
