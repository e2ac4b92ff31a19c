package renderer

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// VerificationURL builds the public lookup URL that doubles as the QR
// payload for a certificate.
func VerificationURL(verifyHost string, certificateID string) string {
	return fmt.Sprintf("%s/verify/%s", verifyHost, certificateID)
}

// QRCodePNG encodes a scannable verification code for embedding on the
// single-certificate render path.
func QRCodePNG(url string) ([]byte, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}
