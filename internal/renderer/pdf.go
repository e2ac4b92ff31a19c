package renderer

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"math"

	"github.com/jung-kurt/gofpdf"
)

// coverFit scales the image uniformly so it fully covers the page (scale =
// max of the two axis ratios), then centers it. The page never shows an
// unpainted margin; the image may overflow and clip along one axis, matching
// the compositor's own crop-to-fill policy.
func coverFit(pageW, pageH, imgW, imgH float64) (drawW, drawH, x, y float64) {
	scale := math.Max(pageW/imgW, pageH/imgH)
	drawW = imgW * scale
	drawH = imgH * scale
	x = (pageW - drawW) / 2
	y = (pageH - drawH) / 2
	return drawW, drawH, x, y
}

// PDFPacker wraps raster images into single-page A4 landscape PDFs and,
// when configured, applies a digital signature.
type PDFPacker struct {
	signer *CertificateSigner
}

func NewPDFPacker(signer *CertificateSigner) *PDFPacker {
	return &PDFPacker{signer: signer}
}

// Pack produces one A4 landscape page with the raster cover-fit onto it.
func (p *PDFPacker) Pack(raster []byte, certificateID string, recipientID string) ([]byte, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(raster))
	if err != nil {
		return nil, fmt.Errorf("failed to decode raster image: %w", err)
	}

	var imageType string
	switch format {
	case "png":
		imageType = "PNG"
	case "jpeg":
		imageType = "JPEG"
	default:
		return nil, fmt.Errorf("unsupported raster format %q", format)
	}

	pdf := gofpdf.New("L", "mm", "A4", "") // Landscape orientation for certificates
	pdf.AddPage()

	pageWidth, pageHeight := pdf.GetPageSize()
	drawW, drawH, x, y := coverFit(pageWidth, pageHeight, float64(cfg.Width), float64(cfg.Height))

	opts := gofpdf.ImageOptions{ImageType: imageType}
	pdf.RegisterImageOptionsReader("certificate", opts, bytes.NewReader(raster))
	pdf.ImageOptions("certificate", x, y, drawW, drawH, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	pdfBytes := buf.Bytes()

	if p.signer != nil && p.signer.IsEnabled() {
		signedPDF, err := p.signer.SignPDF(pdfBytes, certificateID, recipientID)
		if err != nil {
			slog.Warn("Failed to sign PDF, returning unsigned version",
				"error", err,
				"certificate_id", certificateID,
				"recipient_id", recipientID)
			return pdfBytes, nil
		}
		if len(signedPDF) > 0 {
			pdfBytes = signedPDF
		}
	}

	return pdfBytes, nil
}
