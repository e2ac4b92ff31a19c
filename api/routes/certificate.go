package routes

import (
	certificate_controller "github.com/certward/certward-api/api/controllers/certificate"
	"github.com/certward/certward-api/api/middleware"
	certificatemodel "github.com/certward/certward-api/api/model/certificateModel"
	recipientmodel "github.com/certward/certward-api/api/model/recipientModel"
	templatemodel "github.com/certward/certward-api/api/model/templateModel"
	"github.com/certward/certward-api/common"
	"github.com/certward/certward-api/internal/renderer"
	"github.com/gofiber/fiber/v2"
)

func SetupCertificateRoutes(
	router fiber.Router,
	certificates certificatemodel.ICertificateRepository,
	recipients recipientmodel.IRecipientRepository,
	templates templatemodel.ITemplateRepository,
	orchestrator *renderer.Orchestrator,
) {
	cc := certificate_controller.NewCertificateController(
		certificates,
		recipients,
		templates,
		orchestrator,
		*common.Config.VerifyHost,
	)

	certificateGroup := router.Group("certificate")

	certificateGroup.Use(middleware.Jwt())

	certificateGroup.Post("issue", cc.Issue)
	certificateGroup.Post("generate/:templateId", cc.Generate)
	certificateGroup.Get("archive/:templateId", cc.DownloadArchive)
	certificateGroup.Get("download/:certId", cc.Download)
	certificateGroup.Post("publish/:certId", cc.Publish)
	certificateGroup.Get("mail/:certId", cc.DistributeByMail)
}
