package squads

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/memomarket/escortd/internal/domain"
)

func NewMock(t *testing.T) (*SquadHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withName(r *http.Request, name string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("name", name)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Squad created",
			body: `{"name":"night-watch"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), "night-watch").
					Return(&domain.Squad{ID: 7, Name: "night-watch"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Duplicate squad name",
			body: `{"name":"night-watch"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), "night-watch").Return(nil, domain.ErrDuplicateSquad)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Squad already exists",
		},
		{
			name:          "Empty squad name",
			body:          `{"name":""}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/squads", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Create(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestGetHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Squad found", func(t *testing.T) {
		service.EXPECT().GetByName(gomock.Any(), "night-watch").
			Return(&domain.Squad{ID: 7, Name: "night-watch", Rating: 4.5, RatingCount: 10, TotalEarned: 8000}, nil)

		r := withName(httptest.NewRequest(http.MethodGet, "/api/squads/night-watch", nil), "night-watch")
		w := httptest.NewRecorder()

		handler.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "night-watch")
	})

	t.Run("Squad not found", func(t *testing.T) {
		service.EXPECT().GetByName(gomock.Any(), "ghosts").Return(nil, domain.ErrNotFound)

		r := withName(httptest.NewRequest(http.MethodGet, "/api/squads/ghosts", nil), "ghosts")
		w := httptest.NewRecorder()

		handler.Get(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestJoinHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Escort joined",
			body: `{"escort_external_id":100}`,
			prepareMock: func() {
				service.EXPECT().Join(gomock.Any(), "night-watch", int64(100)).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Squad is full",
			body: `{"escort_external_id":100}`,
			prepareMock: func() {
				service.EXPECT().Join(gomock.Any(), "night-watch", int64(100)).Return(domain.ErrSquadFull)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Squad is full",
		},
		{
			name: "Escort not found",
			body: `{"escort_external_id":999}`,
			prepareMock: func() {
				service.EXPECT().Join(gomock.Any(), "night-watch", int64(999)).Return(domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
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

			r := withName(
				httptest.NewRequest(http.MethodPost, "/api/squads/night-watch/join", bytes.NewBufferString(tt.body)),
				"night-watch")
			w := httptest.NewRecorder()

			handler.Join(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestLeaveHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Leave(gomock.Any(), int64(100)).Return(nil)

	body := bytes.NewBufferString(`{"escort_external_id":100}`)
	r := httptest.NewRequest(http.MethodPost, "/api/squads/leave", body)
	w := httptest.NewRecorder()

	handler.Leave(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Escort left the squad")
}

func TestDisbandHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Squad disbanded", func(t *testing.T) {
		service.EXPECT().Disband(gomock.Any(), "night-watch").Return(nil)

		r := withName(httptest.NewRequest(http.MethodDelete, "/api/squads/night-watch", nil), "night-watch")
		w := httptest.NewRecorder()

		handler.Disband(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Squad disbanded")
	})

	t.Run("Squad not found", func(t *testing.T) {
		service.EXPECT().Disband(gomock.Any(), "ghosts").Return(domain.ErrNotFound)

		r := withName(httptest.NewRequest(http.MethodDelete, "/api/squads/ghosts", nil), "ghosts")
		w := httptest.NewRecorder()

		handler.Disband(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRosterHandler(t *testing.T) {
	handler, service := NewMock(t)

	squadID := 7
	service.EXPECT().Roster(gomock.Any(), "night-watch").Return([]domain.Escort{
		{ID: 1, ExternalID: 100, Username: "alice", SquadID: &squadID},
		{ID: 2, ExternalID: 200, Username: "bob", SquadID: &squadID},
	}, nil)

	r := withName(httptest.NewRequest(http.MethodGet, "/api/squads/night-watch/roster", nil), "night-watch")
	w := httptest.NewRecorder()

	handler.Roster(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
	assert.Contains(t, w.Body.String(), "bob")
}
