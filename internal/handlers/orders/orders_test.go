package orders

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/memomarket/escortd/internal/domain"
	"github.com/memomarket/escortd/internal/service/assignmentservice"
	"github.com/memomarket/escortd/internal/service/orderservice"
)

func NewMock(t *testing.T) (*OrderHandler, *MockService, *MockAssignmentService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	assignmentService := NewMockAssignmentService(ctrl)
	handler := New(service, assignmentService)
	defer ctrl.Finish()
	return handler, service, assignmentService
}

func withMemoID(r *http.Request, memoID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("memoID", memoID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Order created",
			body: `{"memo_id":"memo-1","customer_info":"@customer","description":"two hours","amount":1000}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), "memo-1", "@customer", "two hours", int64(1000)).
					Return(&domain.Order{ID: 1, MemoID: "memo-1", Amount: 1000, Status: domain.OpenOrderStatus, CreatedAt: timeNow}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Duplicate memo id returns the existing order",
			body: `{"memo_id":"memo-1","amount":1000}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), "memo-1", "", "", int64(1000)).
					Return(&domain.Order{ID: 1, MemoID: "memo-1", Amount: 1000, Status: domain.OpenOrderStatus, CreatedAt: timeNow}, domain.ErrDuplicateOrder)
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
		{
			name:          "Missing memo id",
			body:          `{"amount":1000}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Memo id is required",
		},
		{
			name: "Non-positive amount",
			body: `{"memo_id":"memo-1","amount":0}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), "memo-1", "", "", int64(0)).
					Return(nil, orderservice.ErrNonPositiveAmount)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Create(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestListHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	timeNow := time.Now()

	t.Run("Open board", func(t *testing.T) {
		service.EXPECT().ListByStatus(gomock.Any(), "").Return([]domain.Order{
			{ID: 1, MemoID: "memo-1", Amount: 1000, Status: domain.OpenOrderStatus, CreatedAt: timeNow},
		}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		w := httptest.NewRecorder()

		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "memo-1")
	})

	t.Run("Unknown status", func(t *testing.T) {
		service.EXPECT().ListByStatus(gomock.Any(), "bogus").Return(nil, orderservice.ErrUnknownStatus)

		r := httptest.NewRequest(http.MethodGet, "/api/orders?status=bogus", nil)
		w := httptest.NewRecorder()

		handler.List(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestGetHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	t.Run("Order not found", func(t *testing.T) {
		service.EXPECT().GetByMemoID(gomock.Any(), "memo-9").Return(nil, domain.ErrNotFound)

		r := withMemoID(httptest.NewRequest(http.MethodGet, "/api/orders/memo-9", nil), "memo-9")
		w := httptest.NewRecorder()

		handler.Get(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Order not found")
	})
}

func TestApplyHandler(t *testing.T) {
	handler, _, assignmentService := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Application accepted",
			body: `{"escort_external_id":100}`,
			prepareMock: func() {
				assignmentService.EXPECT().Apply(gomock.Any(), "memo-1", int64(100)).
					Return(&domain.Application{OrderID: 1, EscortID: 1}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Duplicate application",
			body: `{"escort_external_id":100}`,
			prepareMock: func() {
				assignmentService.EXPECT().Apply(gomock.Any(), "memo-1", int64(100)).
					Return(nil, domain.ErrDuplicateApplication)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Application already filed",
		},
		{
			name: "Restricted escort",
			body: `{"escort_external_id":100}`,
			prepareMock: func() {
				assignmentService.EXPECT().Apply(gomock.Any(), "memo-1", int64(100)).
					Return(nil, domain.ErrWorkerRestricted)
			},
			expectedCode:  http.StatusLocked,
			expectedError: "Escort is banned or restricted",
		},
		{
			name: "Rules not accepted",
			body: `{"escort_external_id":100}`,
			prepareMock: func() {
				assignmentService.EXPECT().Apply(gomock.Any(), "memo-1", int64(100)).
					Return(nil, assignmentservice.ErrRulesNotAccepted)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Order not open",
			body: `{"escort_external_id":100}`,
			prepareMock: func() {
				assignmentService.EXPECT().Apply(gomock.Any(), "memo-1", int64(100)).
					Return(nil, domain.ErrOrderNotOpen)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Order is not open",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withMemoID(httptest.NewRequest(http.MethodPost, "/api/orders/memo-1/apply", bytes.NewBufferString(tt.body)), "memo-1")
			w := httptest.NewRecorder()

			handler.Apply(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestAssignHandler(t *testing.T) {
	handler, _, assignmentService := NewMock(t)
	timeNow := time.Now()

	t.Run("Crew assigned", func(t *testing.T) {
		assignmentService.EXPECT().Assign(gomock.Any(), "memo-1", []int64{100, 101}).
			Return([]domain.Assignment{
				{OrderID: 1, EscortID: 1, AssignedAt: timeNow},
				{OrderID: 1, EscortID: 2, AssignedAt: timeNow},
			}, nil)

		body := bytes.NewBufferString(`{"escort_external_ids":[100,101]}`)
		r := withMemoID(httptest.NewRequest(http.MethodPost, "/api/orders/memo-1/assign", body), "memo-1")
		w := httptest.NewRecorder()

		handler.Assign(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Crew size out of bounds", func(t *testing.T) {
		assignmentService.EXPECT().Assign(gomock.Any(), "memo-1", []int64{100}).
			Return(nil, assignmentservice.ErrCrewSize)

		body := bytes.NewBufferString(`{"escort_external_ids":[100]}`)
		r := withMemoID(httptest.NewRequest(http.MethodPost, "/api/orders/memo-1/assign", body), "memo-1")
		w := httptest.NewRecorder()

		handler.Assign(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Already assigned", func(t *testing.T) {
		assignmentService.EXPECT().Assign(gomock.Any(), "memo-1", []int64{100, 101}).
			Return(nil, domain.ErrAlreadyAssigned)

		body := bytes.NewBufferString(`{"escort_external_ids":[100,101]}`)
		r := withMemoID(httptest.NewRequest(http.MethodPost, "/api/orders/memo-1/assign", body), "memo-1")
		w := httptest.NewRecorder()

		handler.Assign(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Order is already assigned")
	})
}

func TestAutoAssignHandler(t *testing.T) {
	handler, _, assignmentService := NewMock(t)

	assignmentService.EXPECT().AutoAssign(gomock.Any(), "memo-1").
		Return(nil, assignmentservice.ErrNotEnoughApplicants)

	r := withMemoID(httptest.NewRequest(http.MethodPost, "/api/orders/memo-1/auto-assign", nil), "memo-1")
	w := httptest.NewRecorder()

	handler.AutoAssign(w, r)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestStartHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	timeNow := time.Now()

	t.Run("Order started", func(t *testing.T) {
		service.EXPECT().Start(gomock.Any(), "memo-1").
			Return(&domain.Order{ID: 1, MemoID: "memo-1", Status: domain.InProgressOrderStatus, CreatedAt: timeNow}, nil)

		r := withMemoID(httptest.NewRequest(http.MethodPost, "/api/orders/memo-1/start", nil), "memo-1")
		w := httptest.NewRecorder()

		handler.Start(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), domain.InProgressOrderStatus)
	})

	t.Run("Invalid transition", func(t *testing.T) {
		service.EXPECT().Start(gomock.Any(), "memo-1").Return(nil, domain.ErrInvalidTransition)

		r := withMemoID(httptest.NewRequest(http.MethodPost, "/api/orders/memo-1/start", nil), "memo-1")
		w := httptest.NewRecorder()

		handler.Start(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid order transition")
	})
}

func TestCompleteHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	timeNow := time.Now()

	t.Run("Completed with a rating", func(t *testing.T) {
		rating := 5
		service.EXPECT().Complete(gomock.Any(), "memo-1", &rating).
			Return(&domain.Order{ID: 1, MemoID: "memo-1", Status: domain.CompletedOrderStatus, Commission: 200, CreatedAt: timeNow, FinishedAt: &timeNow}, nil)

		body := bytes.NewBufferString(`{"rating":5}`)
		r := withMemoID(httptest.NewRequest(http.MethodPost, "/api/orders/memo-1/complete", body), "memo-1")
		w := httptest.NewRecorder()

		handler.Complete(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), domain.CompletedOrderStatus)
	})

	t.Run("Completed without a body", func(t *testing.T) {
		service.EXPECT().Complete(gomock.Any(), "memo-1", (*int)(nil)).
			Return(&domain.Order{ID: 1, MemoID: "memo-1", Status: domain.CompletedOrderStatus, CreatedAt: timeNow, FinishedAt: &timeNow}, nil)

		r := withMemoID(httptest.NewRequest(http.MethodPost, "/api/orders/memo-1/complete", nil), "memo-1")
		w := httptest.NewRecorder()

		handler.Complete(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCancelHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	timeNow := time.Now()

	t.Run("Order cancelled", func(t *testing.T) {
		service.EXPECT().Cancel(gomock.Any(), "memo-1").
			Return(&domain.Order{ID: 1, MemoID: "memo-1", Status: domain.CancelledOrderStatus, CreatedAt: timeNow, FinishedAt: &timeNow}, nil)

		r := withMemoID(httptest.NewRequest(http.MethodPost, "/api/orders/memo-1/cancel", nil), "memo-1")
		w := httptest.NewRecorder()

		handler.Cancel(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), domain.CancelledOrderStatus)
	})

	t.Run("Terminal order cannot be cancelled", func(t *testing.T) {
		service.EXPECT().Cancel(gomock.Any(), "memo-1").Return(nil, domain.ErrInvalidTransition)

		r := withMemoID(httptest.NewRequest(http.MethodPost, "/api/orders/memo-1/cancel", nil), "memo-1")
		w := httptest.NewRecorder()

		handler.Cancel(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
