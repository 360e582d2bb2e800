package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/avoronov/digital-library/internal/models"
	"github.com/avoronov/digital-library/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		reqBody      RegisterRequest
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody map[string]string
		rawBody      bool // if true, pass raw body (to simulate invalid JSON)
	}{
		{
			name: "success with default reader role",
			reqBody: RegisterRequest{
				Username: "john_doe",
				Email:    "john@student.com",
				Password: "student123",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john_doe", "john@student.com", "student123", models.RoleReader).
					Return(&models.UserDB{UserID: uuid.New(), Username: "john_doe", Role: models.RoleReader}, nil)
			},
			expectedCode: 201,
			expectedBody: map[string]string{"message": "User registered successfully", "username": "john_doe"},
		},
		{
			name: "success with librarian role",
			reqBody: RegisterRequest{
				Username: "admin",
				Email:    "admin@library.com",
				Password: "admin123",
				Role:     models.RoleLibrarian,
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "admin", "admin@library.com", "admin123", models.RoleLibrarian).
					Return(&models.UserDB{UserID: uuid.New(), Username: "admin", Role: models.RoleLibrarian}, nil)
			},
			expectedCode: 201,
			expectedBody: map[string]string{"message": "User registered successfully", "username": "admin"},
		},
		{
			name: "validation error",
			reqBody: RegisterRequest{
				Username: "jo",
				Email:    "jo@student.com",
				Password: "student123",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "jo", "jo@student.com", "student123", models.RoleReader).
					Return(nil, fmt.Errorf("%w: username must be 3-20 letters, digits or underscores", services.ErrValidation))
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "validation failed: username must be 3-20 letters, digits or underscores"},
		},
		{
			name: "user already exists",
			reqBody: RegisterRequest{
				Username: "jane_smith",
				Email:    "jane@student.com",
				Password: "student123",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "jane_smith", "jane@student.com", "student123", models.RoleReader).
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode: 409,
			expectedBody: map[string]string{"error": "Username or email already exists"},
		},
		{
			name: "internal server error",
			reqBody: RegisterRequest{
				Username: "bob_wilson",
				Email:    "bob@student.com",
				Password: "student123",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob_wilson", "bob@student.com", "student123", models.RoleReader).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
			expectedBody: map[string]string{"error": "Invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
