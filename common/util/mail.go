package util

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/certward/certward-api/common"
	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

func InitDialer() {
	dialer := gomail.NewDialer(*common.Config.MailHost, 587, *common.Config.MailUser, *common.Config.MailPass)
	common.Dialer = dialer
}

// SendCertificateMail downloads the recipient's PDF and mails it as an
// attachment.
func SendCertificateMail(recipientMail string, recipientName string, certificateUrl string, verificationUrl string) error {
	uniqueID := uuid.New().String()
	timestamp := time.Now().Unix()
	localFile := fmt.Sprintf("Certificate_%s_%d.pdf", uniqueID, timestamp)

	if err := downloadCertificate(certificateUrl, localFile); err != nil {
		slog.Error("SendCertificateMail failed downloading file", "error", err)
		return err
	}

	if err := validateDownloadedFile(localFile); err != nil {
		slog.Error("Downloaded file validation failed", "error", err)
		os.Remove(localFile)
		return err
	}

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", *common.Config.MailUser)
	mailer.SetHeader("To", recipientMail)
	mailer.SetHeader("Subject", "Your Certificate")
	mailer.SetBody("text/html", fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Please find your certificate attached to this email.</p>
		<p>Anyone can confirm its authenticity at <a href="%s">%s</a>.</p>
		<p>Best regards,<br>Certward Team</p>
	`, recipientName, verificationUrl, verificationUrl))

	mailer.Attach(localFile, gomail.Rename("Certificate.pdf"), gomail.SetHeader(map[string][]string{
		"Content-Type": {"application/pdf"},
	}))

	if err := common.Dialer.DialAndSend(mailer); err != nil {
		slog.Error("Error Sending Mail", "error", err)
		os.Remove(localFile)
		return err
	}

	os.Remove(localFile)
	slog.Info("Email sent successfully", "recipient", recipientMail)

	return nil
}

func downloadCertificate(url string, filename string) error {
	slog.Info("Downloading certificate", "url", url, "filename", filename)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	bytesWritten, err := io.Copy(file, resp.Body)
	if err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	slog.Info("File downloaded successfully", "bytes", bytesWritten)
	return nil
}

func validateDownloadedFile(filename string) error {
	stat, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("file not found: %w", err)
	}

	if stat.Size() == 0 {
		return fmt.Errorf("downloaded file is empty")
	}

	if filepath.Ext(filename) == ".pdf" {
		file, err := os.Open(filename)
		if err != nil {
			return fmt.Errorf("cannot open file for validation: %w", err)
		}
		defer file.Close()

		header := make([]byte, 4)
		_, err = file.Read(header)
		if err != nil {
			return fmt.Errorf("cannot read file header: %w", err)
		}

		if string(header) != "%PDF" {
			return fmt.Errorf("file is not a valid PDF (header: %s)", string(header))
		}
	}

	return nil
}
