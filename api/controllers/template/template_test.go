package template_controller_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	template_controller "github.com/certward/certward-api/api/controllers/template"
	templatemodel "github.com/certward/certward-api/api/model/templateModel"
	"github.com/certward/certward-api/type/payload"
	"github.com/certward/certward-api/type/shared/model"
	"github.com/gofiber/fiber/v2"
)

const validFields = `[{"id":"f1","name":"name","type":"text","x":50,"y":40,"fontSize":24}]`

// newTestApp mounts the handler behind a middleware that injects the given
// user identity, the same way the JWT guard does in production.
func newTestApp(userId string) *fiber.App {
	app := fiber.New()
	if userId != "" {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("user_id", userId)
			return c.Next()
		})
	}
	return app
}

func TestTemplateController_Create(t *testing.T) {
	tests := []struct {
		name           string
		userId         string
		requestBody    any
		setupMock      func() *templatemodel.MockTemplateRepository
		wantStatusCode int
		checkResponse  func(t *testing.T, body []byte)
	}{
		{
			name:   "successful create",
			userId: "user-1",
			requestBody: payload.CreateTemplatePayload{
				Name:     "Course Completion",
				ImageURL: "https://cdn.example.com/bg.png",
				Fields:   validFields,
			},
			setupMock: func() *templatemodel.MockTemplateRepository {
				mock := templatemodel.NewMockTemplateRepository()
				mock.CreateFunc = func(data payload.CreateTemplatePayload, userId string) (*model.Template, error) {
					return &model.Template{
						ID:     "tmpl-1",
						UserID: userId,
						Name:   data.Name,
						Fields: data.Fields,
					}, nil
				}
				return mock
			},
			wantStatusCode: fiber.StatusOK,
			checkResponse: func(t *testing.T, body []byte) {
				var response map[string]any
				if err := json.Unmarshal(body, &response); err != nil {
					t.Fatalf("Failed to unmarshal response: %v", err)
				}
				if response["success"] != true {
					t.Errorf("Expected success=true, got %v", response["success"])
				}
				data, ok := response["data"].(map[string]any)
				if !ok {
					t.Fatal("Expected data to be a map")
				}
				if data["id"] != "tmpl-1" {
					t.Errorf("Expected id='tmpl-1', got %v", data["id"])
				}
			},
		},
		{
			name:   "rejects malformed fields JSON",
			userId: "user-1",
			requestBody: payload.CreateTemplatePayload{
				Name:   "Broken",
				Fields: `[{"id":`,
			},
			setupMock: func() *templatemodel.MockTemplateRepository {
				return templatemodel.NewMockTemplateRepository()
			},
			wantStatusCode: fiber.StatusBadRequest,
			checkResponse: func(t *testing.T, body []byte) {
				var response map[string]any
				if err := json.Unmarshal(body, &response); err != nil {
					t.Fatalf("Failed to unmarshal response: %v", err)
				}
				if response["success"] != false {
					t.Errorf("Expected success=false, got %v", response["success"])
				}
			},
		},
		{
			name:   "rejects unknown field type",
			userId: "user-1",
			requestBody: payload.CreateTemplatePayload{
				Name:   "Bad Type",
				Fields: `[{"id":"f1","name":"x","type":"hologram","x":10,"y":10}]`,
			},
			setupMock: func() *templatemodel.MockTemplateRepository {
				return templatemodel.NewMockTemplateRepository()
			},
			wantStatusCode: fiber.StatusBadRequest,
			checkResponse:  nil,
		},
		{
			name:   "validation error - missing name",
			userId: "user-1",
			requestBody: payload.CreateTemplatePayload{
				Fields: validFields,
			},
			setupMock: func() *templatemodel.MockTemplateRepository {
				return templatemodel.NewMockTemplateRepository()
			},
			wantStatusCode: fiber.StatusBadRequest,
			checkResponse:  nil,
		},
		{
			name:   "unauthenticated request",
			userId: "",
			requestBody: payload.CreateTemplatePayload{
				Name:   "No Auth",
				Fields: validFields,
			},
			setupMock: func() *templatemodel.MockTemplateRepository {
				return templatemodel.NewMockTemplateRepository()
			},
			wantStatusCode: fiber.StatusUnauthorized,
			checkResponse:  nil,
		},
		{
			name:   "repository create fails",
			userId: "user-1",
			requestBody: payload.CreateTemplatePayload{
				Name:   "DB down",
				Fields: validFields,
			},
			setupMock: func() *templatemodel.MockTemplateRepository {
				mock := templatemodel.NewMockTemplateRepository()
				mock.CreateFunc = func(data payload.CreateTemplatePayload, userId string) (*model.Template, error) {
					return nil, errors.New("insert failed")
				}
				return mock
			},
			wantStatusCode: fiber.StatusInternalServerError,
			checkResponse:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(tt.userId)
			tc := template_controller.NewTemplateController(tt.setupMock())
			app.Post("/template", tc.Create)

			bodyBytes, err := json.Marshal(tt.requestBody)
			if err != nil {
				t.Fatalf("Failed to marshal request body: %v", err)
			}

			req := httptest.NewRequest("POST", "/template", bytes.NewBuffer(bodyBytes))
			req.Header.Set("Content-Type", "application/json")

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

func TestTemplateController_GetById(t *testing.T) {
	tests := []struct {
		name           string
		userId         string
		templateId     string
		setupMock      func() *templatemodel.MockTemplateRepository
		wantStatusCode int
		wantMessage    string
	}{
		{
			name:       "owner retrieves template",
			userId:     "user-1",
			templateId: "tmpl-1",
			setupMock: func() *templatemodel.MockTemplateRepository {
				mock := templatemodel.NewMockTemplateRepository()
				mock.GetByIdFunc = func(id string) (*model.Template, error) {
					return &model.Template{ID: id, UserID: "user-1", Name: "Course"}, nil
				}
				return mock
			},
			wantStatusCode: fiber.StatusOK,
			wantMessage:    "Template retrieved",
		},
		{
			name:       "template not found",
			userId:     "user-1",
			templateId: "missing",
			setupMock: func() *templatemodel.MockTemplateRepository {
				return templatemodel.NewMockTemplateRepository()
			},
			wantStatusCode: fiber.StatusBadRequest,
			wantMessage:    "Template not found",
		},
		{
			name:       "template owned by another user",
			userId:     "user-2",
			templateId: "tmpl-1",
			setupMock: func() *templatemodel.MockTemplateRepository {
				mock := templatemodel.NewMockTemplateRepository()
				mock.GetByIdFunc = func(id string) (*model.Template, error) {
					return &model.Template{ID: id, UserID: "user-1"}, nil
				}
				return mock
			},
			wantStatusCode: fiber.StatusUnauthorized,
			wantMessage:    "Template belongs to another user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(tt.userId)
			tc := template_controller.NewTemplateController(tt.setupMock())
			app.Get("/template/:templateId", tc.GetById)

			req := httptest.NewRequest("GET", "/template/"+tt.templateId, nil)

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
		})
	}
}
