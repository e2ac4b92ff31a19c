package certificate_controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/certward/certward-api/api/middleware"
	"github.com/certward/certward-api/common"
	"github.com/certward/certward-api/common/util"
	"github.com/certward/certward-api/internal/renderer"
	"github.com/certward/certward-api/type/payload"
	"github.com/certward/certward-api/type/response"
	"github.com/certward/certward-api/type/shared/model"
	"github.com/gofiber/fiber/v2"
)

// Upper bound for one bulk render pass, archive upload included.
const generateTimeout = 15 * time.Minute

// Generate renders certificates for every requested recipient of a template,
// bundles the PDFs into a ZIP, and stores it. Recipients that already hold a
// certificate for the template reuse it; the rest get one issued on the fly.
func (ctrl *CertificateController) Generate(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	templateId := c.Params("templateId")

	body := new(payload.GenerateCertificatesPayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendError(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	tmpl, tmplErr := ctrl.templates.GetById(templateId)
	if tmplErr != nil {
		return response.SendInternalError(c, tmplErr)
	}
	if tmpl == nil {
		return response.SendFailed(c, "Template not found")
	}
	if tmpl.UserID != userId {
		return response.SendUnauthorized(c, "Template belongs to another user")
	}

	jobs, jobErr := ctrl.buildJobs(userId, templateId, body.RecipientIDs)
	if jobErr != nil {
		return response.SendInternalError(c, jobErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()

	archive, genErr := ctrl.orchestrator.GenerateArchive(ctx, jobs)
	if genErr != nil {
		if errors.Is(genErr, renderer.ErrNoSuccessfulJobs) {
			slog.Error("Certificate Generate produced no output", "template_id", templateId, "jobs", len(jobs))
			return response.SendError(c, "No certificates were generated successfully")
		}
		return response.SendInternalError(c, genErr)
	}

	objectName := fmt.Sprintf("archives/%s/%d.zip", templateId, time.Now().Unix())
	archiveUrl, uploadErr := util.UploadBytes(ctx, *common.Config.BucketCertificate, objectName, archive.Zip, "application/zip")
	if uploadErr != nil {
		slog.Error("Certificate Generate archive upload failed", "error", uploadErr, "template_id", templateId)
		return response.SendError(c, "Failed to store certificate archive")
	}

	if urlErr := ctrl.templates.EditArchiveUrl(templateId, archiveUrl); urlErr != nil {
		slog.Warn("Certificate Generate archive URL update failed", "error", urlErr, "template_id", templateId)
	}

	results := make([]payload.GenerateResult, len(archive.Results))
	for i, r := range archive.Results {
		results[i] = payload.GenerateResult{
			CertificateID: r.CertificateID,
			RecipientID:   r.RecipientID,
			Filename:      r.Filename,
			Status:        r.Status,
			Error:         r.Error,
		}
	}

	slog.Info("Certificate Generate completed",
		"template_id", templateId,
		"succeeded", archive.Succeeded,
		"failed", archive.Failed)

	return response.SendSuccess(c, "Certificates generated", payload.GenerateCertificatesResponse{
		Results:    results,
		Succeeded:  archive.Succeeded,
		Failed:     archive.Failed,
		ArchiveURL: util.GenerateProxyURL(*common.Config.BucketCertificate, objectName),
	})
}

// buildJobs resolves recipient IDs into render jobs, issuing certificates
// where none exist yet. A recipient that cannot be resolved still gets a job
// with an empty certificate ID; the orchestrator reports it as a failure
// instead of dropping it silently.
func (ctrl *CertificateController) buildJobs(userId string, templateId string, recipientIds []string) ([]renderer.Job, error) {
	existing, queryErr := ctrl.certificates.GetByTemplate(templateId)
	if queryErr != nil {
		return nil, queryErr
	}

	byRecipient := make(map[string]*model.Certificate, len(existing))
	for _, cert := range existing {
		byRecipient[cert.RecipientID] = cert
	}

	jobs := make([]renderer.Job, 0, len(recipientIds))
	for _, recipientId := range recipientIds {
		job := renderer.Job{RecipientID: recipientId, TemplateID: templateId}

		if cert, found := byRecipient[recipientId]; found {
			job.CertificateID = cert.ID
			jobs = append(jobs, job)
			continue
		}

		recipient, recipientErr := ctrl.recipients.GetById(recipientId)
		if recipientErr != nil || recipient == nil || recipient.UserID != userId {
			slog.Warn("Certificate Generate skipping certificate issuance",
				"recipient_id", recipientId,
				"template_id", templateId,
				"error", recipientErr)
			jobs = append(jobs, job)
			continue
		}

		cert, issueErr := ctrl.certificates.Issue(recipientId, templateId, recipient.IssueDate)
		if issueErr != nil {
			slog.Warn("Certificate Generate issuance failed",
				"recipient_id", recipientId,
				"template_id", templateId,
				"error", issueErr)
			jobs = append(jobs, job)
			continue
		}

		job.CertificateID = cert.ID
		jobs = append(jobs, job)
	}

	return jobs, nil
}
