package auth_controller_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	auth_controller "github.com/certward/certward-api/api/controllers/auth"
	usermodel "github.com/certward/certward-api/api/model/userModel"
	"github.com/certward/certward-api/common"
	"github.com/certward/certward-api/common/util"
	"github.com/certward/certward-api/type/payload"
	"github.com/certward/certward-api/type/shared"
	"github.com/certward/certward-api/type/shared/model"
	"github.com/gofiber/fiber/v2"
)

func setTestConfig() {
	secret := "test-jwt-secret"
	common.Config = &shared.Config{JWTSecret: &secret}
}

func TestAuthController_Login(t *testing.T) {
	setTestConfig()

	hashed, err := util.HashPassword("testpass123")
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	tests := []struct {
		name           string
		requestBody    any
		setupMock      func() *usermodel.MockUserRepository
		wantStatusCode int
		checkResponse  func(t *testing.T, body []byte)
	}{
		{
			name: "successful login",
			requestBody: payload.LoginPayload{
				Username: "testuser",
				Password: "testpass123",
			},
			setupMock: func() *usermodel.MockUserRepository {
				mock := usermodel.NewMockUserRepository()
				mock.GetByUsernameFunc = func(username string) (*model.User, error) {
					return &model.User{
						ID:       "user-1",
						Username: username,
						Password: hashed,
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
				if response["message"] != "Login Successfully" {
					t.Errorf("Expected message='Login Successfully', got %v", response["message"])
				}
				data, ok := response["data"].(map[string]any)
				if !ok {
					t.Fatal("Expected data to be a map")
				}
				token, ok := data["token"].(string)
				if !ok || token == "" {
					t.Errorf("Expected a non-empty token, got %v", data["token"])
				}
			},
		},
		{
			name:        "invalid request body - malformed JSON",
			requestBody: "invalid json",
			setupMock: func() *usermodel.MockUserRepository {
				return usermodel.NewMockUserRepository()
			},
			wantStatusCode: fiber.StatusInternalServerError,
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
			name: "validation error - missing username",
			requestBody: payload.LoginPayload{
				Username: "",
				Password: "testpass123",
			},
			setupMock: func() *usermodel.MockUserRepository {
				return usermodel.NewMockUserRepository()
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
			name: "user not found",
			requestBody: payload.LoginPayload{
				Username: "ghost",
				Password: "testpass123",
			},
			setupMock: func() *usermodel.MockUserRepository {
				mock := usermodel.NewMockUserRepository()
				mock.GetByUsernameFunc = func(username string) (*model.User, error) {
					return nil, nil
				}
				return mock
			},
			wantStatusCode: fiber.StatusBadRequest,
			checkResponse: func(t *testing.T, body []byte) {
				var response map[string]any
				if err := json.Unmarshal(body, &response); err != nil {
					t.Fatalf("Failed to unmarshal response: %v", err)
				}
				if response["message"] != "User not found" {
					t.Errorf("Expected message='User not found', got %v", response["message"])
				}
			},
		},
		{
			name: "wrong password",
			requestBody: payload.LoginPayload{
				Username: "testuser",
				Password: "wrongpassword",
			},
			setupMock: func() *usermodel.MockUserRepository {
				mock := usermodel.NewMockUserRepository()
				mock.GetByUsernameFunc = func(username string) (*model.User, error) {
					return &model.User{
						ID:       "user-1",
						Username: username,
						Password: hashed,
					}, nil
				}
				return mock
			},
			wantStatusCode: fiber.StatusBadRequest,
			checkResponse: func(t *testing.T, body []byte) {
				var response map[string]any
				if err := json.Unmarshal(body, &response); err != nil {
					t.Fatalf("Failed to unmarshal response: %v", err)
				}
				if response["message"] != "Incorrect Password" {
					t.Errorf("Expected message='Incorrect Password', got %v", response["message"])
				}
			},
		},
		{
			name: "database query fails",
			requestBody: payload.LoginPayload{
				Username: "testuser",
				Password: "testpass123",
			},
			setupMock: func() *usermodel.MockUserRepository {
				mock := usermodel.NewMockUserRepository()
				mock.GetByUsernameFunc = func(username string) (*model.User, error) {
					return nil, errors.New("connection refused")
				}
				return mock
			},
			wantStatusCode: fiber.StatusInternalServerError,
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
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			ac := auth_controller.NewAuthController(tt.setupMock())

			var bodyReader io.Reader
			if str, ok := tt.requestBody.(string); ok {
				bodyReader = bytes.NewBufferString(str)
			} else {
				bodyBytes, err := json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatalf("Failed to marshal request body: %v", err)
				}
				bodyReader = bytes.NewBuffer(bodyBytes)
			}

			req := httptest.NewRequest("POST", "/login", bodyReader)
			req.Header.Set("Content-Type", "application/json")

			app.Post("/login", ac.Login)

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
