package escorts

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/memomarket/escortd/internal/domain"
)

func NewMock(t *testing.T) (*EscortHandler, *MockService, *MockReputationService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	reputationService := NewMockReputationService(ctrl)
	handler := New(service, reputationService)
	defer ctrl.Finish()
	return handler, service, reputationService
}

func withExternalID(r *http.Request, externalID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("externalID", externalID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestRegisterHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Escort registered",
			body: `{"external_id":100,"username":"alice"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), int64(100), "alice").
					Return(&domain.Escort{ID: 1, ExternalID: 100, Username: "alice"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/escorts", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Register(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestGetHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	t.Run("Escort found", func(t *testing.T) {
		banUntil := time.Now().Add(48 * time.Hour)
		service.EXPECT().GetByExternalID(gomock.Any(), int64(100)).
			Return(&domain.Escort{ID: 1, ExternalID: 100, Username: "alice", BanUntil: &banUntil}, nil)

		r := withExternalID(httptest.NewRequest(http.MethodGet, "/api/escorts/100", nil), "100")
		w := httptest.NewRecorder()

		handler.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "alice")
		assert.Contains(t, w.Body.String(), "ban_until")
	})

	t.Run("Escort not found", func(t *testing.T) {
		service.EXPECT().GetByExternalID(gomock.Any(), int64(999)).Return(nil, domain.ErrNotFound)

		r := withExternalID(httptest.NewRequest(http.MethodGet, "/api/escorts/999", nil), "999")
		w := httptest.NewRecorder()

		handler.Get(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Invalid external id", func(t *testing.T) {
		r := withExternalID(httptest.NewRequest(http.MethodGet, "/api/escorts/abc", nil), "abc")
		w := httptest.NewRecorder()

		handler.Get(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAcceptRulesHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().AcceptRules(gomock.Any(), int64(100)).Return(nil)

	r := withExternalID(httptest.NewRequest(http.MethodPost, "/api/escorts/100/accept-rules", nil), "100")
	w := httptest.NewRecorder()

	handler.AcceptRules(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Rules accepted")
}

func TestSetGameIDHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	t.Run("Game id updated", func(t *testing.T) {
		service.EXPECT().SetGameID(gomock.Any(), int64(100), "pilot-7").Return(nil)

		body := bytes.NewBufferString(`{"game_id":"pilot-7"}`)
		r := withExternalID(httptest.NewRequest(http.MethodPost, "/api/escorts/100/game-id", body), "100")
		w := httptest.NewRecorder()

		handler.SetGameID(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Empty game id", func(t *testing.T) {
		body := bytes.NewBufferString(`{"game_id":""}`)
		r := withExternalID(httptest.NewRequest(http.MethodPost, "/api/escorts/100/game-id", body), "100")
		w := httptest.NewRecorder()

		handler.SetGameID(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBanHandler(t *testing.T) {
	handler, _, reputationService := NewMock(t)

	t.Run("Ban until a moment", func(t *testing.T) {
		until := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
		reputationService.EXPECT().Ban(gomock.Any(), int64(100), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, got *time.Time) error {
				assert.True(t, until.Equal(*got))
				return nil
			})

		body := bytes.NewBufferString(fmt.Sprintf(`{"until":%q}`, until.Format(time.RFC3339)))
		r := withExternalID(httptest.NewRequest(http.MethodPost, "/api/escorts/100/ban", body), "100")
		w := httptest.NewRecorder()

		handler.Ban(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Ban updated")
	})

	t.Run("Omitted until lifts the ban", func(t *testing.T) {
		reputationService.EXPECT().Ban(gomock.Any(), int64(100), (*time.Time)(nil)).Return(nil)

		body := bytes.NewBufferString(`{}`)
		r := withExternalID(httptest.NewRequest(http.MethodPost, "/api/escorts/100/ban", body), "100")
		w := httptest.NewRecorder()

		handler.Ban(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Malformed until", func(t *testing.T) {
		body := bytes.NewBufferString(`{"until":"tomorrow"}`)
		r := withExternalID(httptest.NewRequest(http.MethodPost, "/api/escorts/100/ban", body), "100")
		w := httptest.NewRecorder()

		handler.Ban(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid until timestamp")
	})
}

func TestRestrictHandler(t *testing.T) {
	handler, _, reputationService := NewMock(t)

	reputationService.EXPECT().Restrict(gomock.Any(), int64(100), (*time.Time)(nil)).Return(nil)

	body := bytes.NewBufferString(`{}`)
	r := withExternalID(httptest.NewRequest(http.MethodPost, "/api/escorts/100/restrict", body), "100")
	w := httptest.NewRecorder()

	handler.Restrict(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Restriction updated")
}
