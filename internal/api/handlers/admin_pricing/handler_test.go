package admin_pricing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-ShuttleService/internal/service/pricing"
	"github.com/m04kA/SMC-ShuttleService/internal/service/pricing/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) CreateTier(ctx context.Context, req *models.CreateTierRequest) (*models.TierResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TierResponse), args.Error(1)
}

func (m *mockService) DeleteTier(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(svc *mockService) *mux.Router {
	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/admin/pricing-tiers", h.CreateTier).Methods(http.MethodPost)
	r.HandleFunc("/admin/pricing-tiers/{tierId}", h.DeleteTier).Methods(http.MethodDelete)
	return r
}

func TestHandler_CreateTier(t *testing.T) {
	svc := new(mockService)
	svc.On("CreateTier", mock.Anything, mock.MatchedBy(func(req *models.CreateTierRequest) bool {
		return req.CustomerType == "student" && req.BasePrice == 25
	})).Return(&models.TierResponse{ID: 2, CustomerType: "STUDENT", BasePrice: 25, IsActive: true}, nil)

	w := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/pricing-tiers",
		strings.NewReader(`{"customerType":"student","basePrice":25}`)))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"customerType":"STUDENT"`)
	svc.AssertExpectations(t)
}

func TestHandler_CreateTierErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"duplicate", pricing.ErrDuplicateActiveTier, http.StatusBadRequest},
		{"invalid", pricing.ErrInvalidInput, http.StatusBadRequest},
		{"internal", pricing.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			svc.On("CreateTier", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/pricing-tiers",
				strings.NewReader(`{"customerType":"regular","basePrice":35}`)))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandler_DeleteTier(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"deleted", nil, http.StatusNoContent},
		{"in use", pricing.ErrTierInUse, http.StatusBadRequest},
		{"not found", pricing.ErrTierNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			svc.On("DeleteTier", mock.Anything, int64(5)).Return(tt.err)

			w := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/pricing-tiers/5", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
