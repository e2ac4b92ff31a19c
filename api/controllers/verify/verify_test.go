package verify_controller_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	verify_controller "github.com/certward/certward-api/api/controllers/verify"
	certificatemodel "github.com/certward/certward-api/api/model/certificateModel"
	recipientmodel "github.com/certward/certward-api/api/model/recipientModel"
	templatemodel "github.com/certward/certward-api/api/model/templateModel"
	"github.com/certward/certward-api/type/shared/model"
	"github.com/gofiber/fiber/v2"
)

func TestVerifyController_VerifyById(t *testing.T) {
	tests := []struct {
		name           string
		certId         string
		setupMocks     func() (*certificatemodel.MockCertificateRepository, *recipientmodel.MockRecipientRepository, *templatemodel.MockTemplateRepository)
		wantStatusCode int
		wantMessage    string
		checkResponse  func(t *testing.T, body []byte)
	}{
		{
			name:   "published certificate verifies",
			certId: "CERT12345678",
			setupMocks: func() (*certificatemodel.MockCertificateRepository, *recipientmodel.MockRecipientRepository, *templatemodel.MockTemplateRepository) {
				certs := certificatemodel.NewMockCertificateRepository()
				certs.GetByIdFunc = func(certId string) (*model.Certificate, error) {
					return &model.Certificate{
						ID:          certId,
						RecipientID: "rec-1",
						TemplateID:  "tmpl-1",
						Status:      model.CertificateStatusPublished,
						IssueDate:   "2026-01-15",
					}, nil
				}

				recipients := recipientmodel.NewMockRecipientRepository()
				recipients.GetByIdFunc = func(id string) (*recipientmodel.CombinedRecipient, error) {
					return &recipientmodel.CombinedRecipient{
						Recipient: model.Recipient{ID: id, Name: "Ada Lovelace", Course: "Analytical Engines"},
					}, nil
				}

				templates := templatemodel.NewMockTemplateRepository()
				templates.GetByIdFunc = func(id string) (*model.Template, error) {
					return &model.Template{ID: id, Name: "Course Completion"}, nil
				}

				return certs, recipients, templates
			},
			wantStatusCode: fiber.StatusOK,
			wantMessage:    "Certificate is valid",
			checkResponse: func(t *testing.T, body []byte) {
				var response map[string]any
				if err := json.Unmarshal(body, &response); err != nil {
					t.Fatalf("Failed to unmarshal response: %v", err)
				}
				data, ok := response["data"].(map[string]any)
				if !ok {
					t.Fatal("Expected data to be a map")
				}
				if data["recipientName"] != "Ada Lovelace" {
					t.Errorf("Expected recipientName='Ada Lovelace', got %v", data["recipientName"])
				}
				if data["template"] != "Course Completion" {
					t.Errorf("Expected template='Course Completion', got %v", data["template"])
				}
			},
		},
		{
			name:   "draft certificate stays hidden",
			certId: "DRAFT1234567",
			setupMocks: func() (*certificatemodel.MockCertificateRepository, *recipientmodel.MockRecipientRepository, *templatemodel.MockTemplateRepository) {
				certs := certificatemodel.NewMockCertificateRepository()
				certs.GetByIdFunc = func(certId string) (*model.Certificate, error) {
					return &model.Certificate{ID: certId, RecipientID: "rec-1", Status: model.CertificateStatusDraft}, nil
				}
				return certs, recipientmodel.NewMockRecipientRepository(), templatemodel.NewMockTemplateRepository()
			},
			wantStatusCode: fiber.StatusBadRequest,
			wantMessage:    "Certificate not found",
		},
		{
			name:   "unknown certificate",
			certId: "NOPE00000000",
			setupMocks: func() (*certificatemodel.MockCertificateRepository, *recipientmodel.MockRecipientRepository, *templatemodel.MockTemplateRepository) {
				return certificatemodel.NewMockCertificateRepository(), recipientmodel.NewMockRecipientRepository(), templatemodel.NewMockTemplateRepository()
			},
			wantStatusCode: fiber.StatusBadRequest,
			wantMessage:    "Certificate not found",
		},
		{
			name:   "orphaned certificate",
			certId: "ORPH12345678",
			setupMocks: func() (*certificatemodel.MockCertificateRepository, *recipientmodel.MockRecipientRepository, *templatemodel.MockTemplateRepository) {
				certs := certificatemodel.NewMockCertificateRepository()
				certs.GetByIdFunc = func(certId string) (*model.Certificate, error) {
					return &model.Certificate{ID: certId, RecipientID: "gone", Status: model.CertificateStatusPublished}, nil
				}
				return certs, recipientmodel.NewMockRecipientRepository(), templatemodel.NewMockTemplateRepository()
			},
			wantStatusCode: fiber.StatusBadRequest,
			wantMessage:    "Certificate not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			certs, recipients, templates := tt.setupMocks()
			vc := verify_controller.NewVerifyController(certs, recipients, templates)

			app := fiber.New()
			app.Get("/verify/:certId", vc.VerifyById)

			req := httptest.NewRequest("GET", "/verify/"+tt.certId, nil)

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("Failed to execute request: %v", err)
			}

			if resp.StatusCode != tt.wantStatusCode {
				t.Errorf("Expected status code %d, got %d", tt.wantStatusCode, resp.StatusCode)
			}

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("Failed to read response body: %v", err)
			}

			var response map[string]any
			if err := json.Unmarshal(body, &response); err != nil {
				t.Fatalf("Failed to unmarshal response: %v", err)
			}
			if response["message"] != tt.wantMessage {
				t.Errorf("Expected message=%q, got %v", tt.wantMessage, response["message"])
			}

			if tt.checkResponse != nil {
				tt.checkResponse(t, body)
			}
		})
	}
}

func TestVerifyController_VerifyByEmail(t *testing.T) {
	tests := []struct {
		name           string
		email          string
		setupMocks     func() (*certificatemodel.MockCertificateRepository, *recipientmodel.MockRecipientRepository, *templatemodel.MockTemplateRepository)
		wantStatusCode int
		checkResponse  func(t *testing.T, body []byte)
	}{
		{
			name:  "published certificates returned, drafts filtered",
			email: "ada@example.com",
			setupMocks: func() (*certificatemodel.MockCertificateRepository, *recipientmodel.MockRecipientRepository, *templatemodel.MockTemplateRepository) {
				recipients := recipientmodel.NewMockRecipientRepository()
				recipients.GetByEmailFunc = func(email string) ([]*model.Recipient, error) {
					return []*model.Recipient{{ID: "rec-1", Name: "Ada", Email: email}}, nil
				}

				certs := certificatemodel.NewMockCertificateRepository()
				certs.GetByRecipientFunc = func(recipientId string) ([]*model.Certificate, error) {
					return []*model.Certificate{
						{ID: "PUB111111111", RecipientID: recipientId, Status: model.CertificateStatusPublished},
						{ID: "DRAFT2222222", RecipientID: recipientId, Status: model.CertificateStatusDraft},
					}, nil
				}

				return certs, recipients, templatemodel.NewMockTemplateRepository()
			},
			wantStatusCode: fiber.StatusOK,
			checkResponse: func(t *testing.T, body []byte) {
				var response map[string]any
				if err := json.Unmarshal(body, &response); err != nil {
					t.Fatalf("Failed to unmarshal response: %v", err)
				}
				data, ok := response["data"].([]any)
				if !ok {
					t.Fatal("Expected data to be a list")
				}
				if len(data) != 1 {
					t.Fatalf("Expected 1 certificate, got %d", len(data))
				}
				entry, ok := data[0].(map[string]any)
				if !ok {
					t.Fatal("Expected entry to be a map")
				}
				if entry["certificateId"] != "PUB111111111" {
					t.Errorf("Expected certificateId='PUB111111111', got %v", entry["certificateId"])
				}
			},
		},
		{
			name:  "no certificates for email",
			email: "nobody@example.com",
			setupMocks: func() (*certificatemodel.MockCertificateRepository, *recipientmodel.MockRecipientRepository, *templatemodel.MockTemplateRepository) {
				return certificatemodel.NewMockCertificateRepository(), recipientmodel.NewMockRecipientRepository(), templatemodel.NewMockTemplateRepository()
			},
			wantStatusCode: fiber.StatusBadRequest,
			checkResponse: func(t *testing.T, body []byte) {
				var response map[string]any
				if err := json.Unmarshal(body, &response); err != nil {
					t.Fatalf("Failed to unmarshal response: %v", err)
				}
				if response["message"] != "No certificates found for this email" {
					t.Errorf("Expected message='No certificates found for this email', got %v", response["message"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			certs, recipients, templates := tt.setupMocks()
			vc := verify_controller.NewVerifyController(certs, recipients, templates)

			app := fiber.New()
			app.Get("/verify/email/:email", vc.VerifyByEmail)

			req := httptest.NewRequest("GET", "/verify/email/"+tt.email, nil)

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("Failed to execute request: %v", err)
			}

			if resp.StatusCode != tt.wantStatusCode {
				t.Errorf("Expected status code %d, got %d", tt.wantStatusCode, resp.StatusCode)
			}

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("Failed to read response body: %v", err)
			}

			if tt.checkResponse != nil {
				tt.checkResponse(t, body)
			}
		})
	}
}
