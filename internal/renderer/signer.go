package renderer

import (
	"bytes"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	digitorus_pdf "github.com/digitorus/pdf"
	"github.com/digitorus/pdfsign/sign"

	"github.com/certward/certward-api/common"
)

// CertificateSigner applies a PAdES signature to generated PDFs so verifiers
// can confirm the document was produced by this platform. Optional: when
// disabled it passes PDFs through untouched.
type CertificateSigner struct {
	certificate *x509.Certificate
	privateKey  *rsa.PrivateKey
	enabled     bool
}

func NewCertificateSigner() (*CertificateSigner, error) {
	if common.Config.SigningEnabled == nil || !*common.Config.SigningEnabled {
		slog.Info("PDF signing disabled in configuration")
		return &CertificateSigner{enabled: false}, nil
	}

	if common.Config.SigningCertPath == nil || common.Config.SigningKeyPath == nil {
		return nil, fmt.Errorf("signing enabled but certificate or key path not configured")
	}

	certPath := *common.Config.SigningCertPath
	keyPath := *common.Config.SigningKeyPath

	certPEM, err := os.ReadFile(certPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate file %s: %w", certPath, err)
	}

	certBlock, _ := pem.Decode(certPEM)
	if certBlock == nil {
		return nil, fmt.Errorf("failed to decode certificate PEM from %s", certPath)
	}

	certificate, err := x509.ParseCertificate(certBlock.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificate: %w", err)
	}

	keyPEM, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file %s: %w", keyPath, err)
	}

	keyBlock, _ := pem.Decode(keyPEM)
	if keyBlock == nil {
		return nil, fmt.Errorf("failed to decode private key PEM from %s", keyPath)
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(keyBlock.Bytes)
	if err != nil {
		// Try PKCS8 format as fallback
		key, err := x509.ParsePKCS8PrivateKey(keyBlock.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %w", err)
		}
		var ok bool
		privateKey, ok = key.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("private key is not RSA format")
		}
	}

	slog.Info("Certificate signer initialized",
		"cert_subject", certificate.Subject.String(),
		"cert_expiry", certificate.NotAfter)

	return &CertificateSigner{
		certificate: certificate,
		privateKey:  privateKey,
		enabled:     true,
	}, nil
}

func (s *CertificateSigner) IsEnabled() bool {
	return s.enabled
}

// SignPDF signs the document in place. Signing failures degrade to the
// unsigned PDF: a missing signature is preferable to a missing certificate.
func (s *CertificateSigner) SignPDF(pdfBytes []byte, certificateID string, recipientID string) ([]byte, error) {
	if !s.enabled {
		return pdfBytes, nil
	}

	if s.privateKey == nil || s.certificate == nil {
		slog.Error("Signer missing key material", "certificate_id", certificateID)
		return pdfBytes, nil
	}

	if len(pdfBytes) == 0 {
		return pdfBytes, fmt.Errorf("empty PDF bytes")
	}

	signData := sign.SignData{
		Signature: sign.SignDataSignature{
			Info: sign.SignDataSignatureInfo{
				Name:     "Certward",
				Location: "Digital Certificate Platform",
				Reason:   fmt.Sprintf("Certificate issuance for recipient %s", recipientID),
				Date:     time.Now(),
			},
			CertType:   sign.CertificationSignature,
			DocMDPPerm: sign.AllowFillingExistingFormFieldsAndSignaturesPerms,
		},
		Signer:      s.privateKey,
		Certificate: s.certificate,
	}

	inputReader := bytes.NewReader(pdfBytes)
	var outputBuffer bytes.Buffer

	var signingError error
	func() {
		// pdfsign panics on some malformed inputs
		defer func() {
			if r := recover(); r != nil {
				slog.Error("Panic occurred during PDF signing",
					"panic", r,
					"certificate_id", certificateID,
					"recipient_id", recipientID)
				signingError = fmt.Errorf("pdf signing panicked: %v", r)
			}
		}()

		pdfReader, err := digitorus_pdf.NewReader(inputReader, int64(len(pdfBytes)))
		if err != nil {
			signingError = err
			return
		}

		inputReader.Seek(0, io.SeekStart)

		signingError = sign.Sign(inputReader, &outputBuffer, pdfReader, int64(len(pdfBytes)), signData)
	}()

	if signingError != nil || outputBuffer.Len() == 0 {
		slog.Warn("PDF signing failed, returning unsigned PDF",
			"certificate_id", certificateID,
			"recipient_id", recipientID,
			"error", signingError)
		return pdfBytes, nil
	}

	signedPDF := outputBuffer.Bytes()
	slog.Info("PDF signed",
		"certificate_id", certificateID,
		"original_size", len(pdfBytes),
		"signed_size", len(signedPDF))

	return signedPDF, nil
}
