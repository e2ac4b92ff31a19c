package renderer

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"
)

// ErrNoSuccessfulJobs escalates when every job in a batch failed. Per-job
// failures are tallied, never thrown; only the zero-success condition is a
// hard error and no archive is produced for it.
var ErrNoSuccessfulJobs = errors.New("no certificates were generated successfully")

// Store is the read-only slice of the data layer the pipeline is allowed to
// see. Keeping mutation out of reach keeps a render pass side-effect-free
// and independently testable.
type Store interface {
	GetRecipient(id string) (*Recipient, error)
	GetTemplate(id string) (*Template, error)
}

// SurfaceRenderer produces the raster for one certificate. Abstracted so
// the orchestrator can be exercised without a browser.
type SurfaceRenderer interface {
	Render(ctx context.Context, job Job, tmpl *Template, recipient *Recipient) ([]byte, error)
}

// Job pairs a certificate with the records needed to render it. Ephemeral:
// consumed per certificate, never persisted.
type Job struct {
	CertificateID string
	RecipientID   string
	TemplateID    string
}

type JobResult struct {
	CertificateID string `json:"certificateId"`
	RecipientID   string `json:"recipientId"`
	Filename      string `json:"filename,omitempty"`
	Status        string `json:"status"`
	Error         string `json:"error,omitempty"`
}

// ArchiveResult is the outcome of one bulk run: the ZIP payload (nil when
// nothing succeeded), per-job results, and the success/failure tally the
// caller reports to the user.
type ArchiveResult struct {
	Zip       []byte
	Results   []JobResult
	Succeeded int
	Failed    int
}

// DefaultWorkerCount bounds render parallelism to min(8, 2 x logical CPUs):
// enough overlap for throughput without exhausting browser memory on large
// batches.
func DefaultWorkerCount() int {
	workers := 2 * runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// ChromeRenderer is the production SurfaceRenderer: compose an HTML surface,
// rasterize it in a headless tab. includeQR controls whether qrcode fields
// render; bulk output omits them as a speed/simplicity trade-off, the single
// interactive path includes them.
type ChromeRenderer struct {
	Rasterizer *Rasterizer
	Options    CaptureOptions
	IncludeQR  bool
	VerifyHost string
}

func (r *ChromeRenderer) Render(ctx context.Context, job Job, tmpl *Template, recipient *Recipient) ([]byte, error) {
	var qrPNG []byte
	if r.IncludeQR {
		var err error
		qrPNG, err = QRCodePNG(VerificationURL(r.VerifyHost, job.CertificateID))
		if err != nil {
			slog.Warn("QR generation failed, rendering without QR",
				"error", err,
				"certificate_id", job.CertificateID)
			qrPNG = nil
		}
	}

	surface, err := ComposeSurface(tmpl, recipient, qrPNG)
	if err != nil {
		return nil, err
	}

	return r.Rasterizer.Rasterize(ctx, surface, r.Options)
}

// Orchestrator drives the render pipeline across a bounded worker pool and
// packages the surviving outputs into a ZIP archive.
type Orchestrator struct {
	store   Store
	bulk    SurfaceRenderer
	single  SurfaceRenderer
	packer  *PDFPacker
	workers int
}

func New(store Store, rasterizer *Rasterizer, packer *PDFPacker, verifyHost string, workers int) *Orchestrator {
	if workers <= 0 {
		workers = DefaultWorkerCount()
	}
	return &Orchestrator{
		store: store,
		bulk: &ChromeRenderer{
			Rasterizer: rasterizer,
			Options:    BulkCapture,
			VerifyHost: verifyHost,
		},
		single: &ChromeRenderer{
			Rasterizer: rasterizer,
			Options:    SingleCapture,
			IncludeQR:  true,
			VerifyHost: verifyHost,
		},
		packer:  packer,
		workers: workers,
	}
}

// NewWithRenderer wires a custom bulk renderer. Used by tests to run the
// pool without a browser.
func NewWithRenderer(store Store, bulk SurfaceRenderer, packer *PDFPacker, workers int) *Orchestrator {
	if workers <= 0 {
		workers = DefaultWorkerCount()
	}
	return &Orchestrator{store: store, bulk: bulk, single: bulk, packer: packer, workers: workers}
}

func (o *Orchestrator) Workers() int {
	return o.workers
}

type jobOutcome struct {
	result JobResult
	pdf    []byte
	name   string
}

// runJob renders and packs one certificate. Errors are captured in the
// outcome, never propagated: a bad job must not take the batch down.
func (o *Orchestrator) runJob(ctx context.Context, job Job) jobOutcome {
	result := JobResult{CertificateID: job.CertificateID, RecipientID: job.RecipientID}

	recipient, err := o.store.GetRecipient(job.RecipientID)
	if err != nil || recipient == nil {
		slog.Warn("Bulk generate: recipient lookup failed",
			"recipient_id", job.RecipientID,
			"certificate_id", job.CertificateID,
			"error", err)
		result.Status = "error"
		result.Error = "recipient not found"
		return jobOutcome{result: result}
	}

	tmpl, err := o.store.GetTemplate(job.TemplateID)
	if err != nil || tmpl == nil {
		slog.Warn("Bulk generate: template lookup failed",
			"template_id", job.TemplateID,
			"certificate_id", job.CertificateID,
			"error", err)
		result.Status = "error"
		result.Error = "template not found"
		return jobOutcome{result: result}
	}

	raster, err := o.bulk.Render(ctx, job, tmpl, recipient)
	if err != nil || raster == nil {
		slog.Warn("Bulk generate: render failed",
			"certificate_id", job.CertificateID,
			"error", err)
		result.Status = "error"
		result.Error = "render failed"
		return jobOutcome{result: result}
	}

	pdf, err := o.packer.Pack(raster, job.CertificateID, job.RecipientID)
	if err != nil {
		slog.Warn("Bulk generate: PDF packing failed",
			"certificate_id", job.CertificateID,
			"error", err)
		result.Status = "error"
		result.Error = "pdf packing failed"
		return jobOutcome{result: result}
	}

	result.Status = "success"
	return jobOutcome{result: result, pdf: pdf, name: recipient.Name}
}

// GenerateArchive renders every job across the worker pool and bundles the
// successful PDFs into an uncompressed ZIP. PDF payloads are raster-backed
// and near-incompressible, so storage mode trades a few percent of size for
// markedly faster packaging. Cancel the context to abort between jobs.
func (o *Orchestrator) GenerateArchive(ctx context.Context, jobs []Job) (*ArchiveResult, error) {
	started := time.Now()
	slog.Info("Bulk generate starting", "jobs", len(jobs), "workers", o.workers)

	jobChan := make(chan Job, len(jobs))
	outcomeChan := make(chan jobOutcome, len(jobs))

	var wg sync.WaitGroup
	for i := 0; i < o.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobChan {
				select {
				case <-ctx.Done():
					outcomeChan <- jobOutcome{result: JobResult{
						CertificateID: job.CertificateID,
						RecipientID:   job.RecipientID,
						Status:        "error",
						Error:         "cancelled",
					}}
					continue
				default:
				}
				outcomeChan <- o.runJob(ctx, job)
			}
		}()
	}

	for _, job := range jobs {
		jobChan <- job
	}
	close(jobChan)

	go func() {
		wg.Wait()
		close(outcomeChan)
	}()

	var buf bytes.Buffer
	zipWriter := zip.NewWriter(&buf)
	usedNames := make(map[string]bool)

	archive := &ArchiveResult{}

	for outcome := range outcomeChan {
		result := outcome.result

		if result.Status != "success" {
			archive.Failed++
			archive.Results = append(archive.Results, result)
			continue
		}

		filename := archiveFilename(outcome.name, result.CertificateID, usedNames)
		usedNames[filename] = true

		entry, err := zipWriter.CreateHeader(&zip.FileHeader{
			Name:     filename,
			Method:   zip.Store,
			Modified: time.Now(),
		})
		if err != nil {
			slog.Warn("Failed to create ZIP entry", "filename", filename, "error", err)
			result.Status = "error"
			result.Error = "zip entry failed"
			archive.Failed++
			archive.Results = append(archive.Results, result)
			continue
		}

		if _, err := entry.Write(outcome.pdf); err != nil {
			slog.Warn("Failed to write ZIP entry", "filename", filename, "error", err)
			result.Status = "error"
			result.Error = "zip write failed"
			archive.Failed++
			archive.Results = append(archive.Results, result)
			continue
		}

		result.Filename = filename
		archive.Succeeded++
		archive.Results = append(archive.Results, result)
	}

	if err := zipWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close ZIP writer: %w", err)
	}

	if archive.Succeeded == 0 {
		slog.Error("Bulk generate: every job failed", "jobs", len(jobs))
		return nil, ErrNoSuccessfulJobs
	}

	archive.Zip = buf.Bytes()

	slog.Info("Bulk generate completed",
		"succeeded", archive.Succeeded,
		"failed", archive.Failed,
		"archive_bytes", len(archive.Zip),
		"duration", time.Since(started))

	return archive, nil
}

// archiveFilename derives the ZIP entry name from the recipient's name. Two
// recipients can sanitize to the same string; collisions get the certificate
// ID appended so no archive entry is silently overwritten.
func archiveFilename(recipientName string, certificateID string, used map[string]bool) string {
	base := SanitizeFilename(recipientName)
	if base == "" {
		base = certificateID
	}

	filename := base + "-certificate.pdf"
	if used[filename] {
		filename = fmt.Sprintf("%s-certificate-%s.pdf", base, certificateID)
	}
	return filename
}

// RenderSingle produces one certificate for interactive download: lossless
// high-fidelity raster with the QR code included. format is "png" or "pdf".
func (o *Orchestrator) RenderSingle(ctx context.Context, job Job, format string) ([]byte, string, error) {
	recipient, err := o.store.GetRecipient(job.RecipientID)
	if err != nil {
		return nil, "", err
	}
	if recipient == nil {
		return nil, "", fmt.Errorf("recipient %s not found", job.RecipientID)
	}

	tmpl, err := o.store.GetTemplate(job.TemplateID)
	if err != nil {
		return nil, "", err
	}
	if tmpl == nil {
		return nil, "", fmt.Errorf("template %s not found", job.TemplateID)
	}

	raster, err := o.single.Render(ctx, job, tmpl, recipient)
	if err != nil {
		return nil, "", err
	}

	if format == "png" {
		return raster, "image/png", nil
	}

	pdf, err := o.packer.Pack(raster, job.CertificateID, job.RecipientID)
	if err != nil {
		return nil, "", err
	}

	return pdf, "application/pdf", nil
}
