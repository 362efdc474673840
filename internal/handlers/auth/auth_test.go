package auth

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/memomarket/escortd/internal/domain"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedCode   int
		expectedError  string
		expectedHeader string
	}{
		{
			name: "Successful login",
			body: `{"login":"admin","password":"hunter2"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "admin", "hunter2").
					Return(&domain.Operator{ID: 1, Login: "admin"}, nil)
				service.EXPECT().GenerateToken(1).Return("token-value", nil)
			},
			expectedCode:   http.StatusOK,
			expectedHeader: "Bearer token-value",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Invalid credentials",
			body: `{"login":"admin","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "admin", "wrong").
					Return(nil, errors.New("invalid credentials"))
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Token generation error",
			body: `{"login":"admin","password":"hunter2"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "admin", "hunter2").
					Return(&domain.Operator{ID: 1, Login: "admin"}, nil)
				service.EXPECT().GenerateToken(1).Return("", errors.New("signing error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedHeader != "" {
				assert.Equal(t, tt.expectedHeader, w.Header().Get("Authorization"))
			}
		})
	}
}
