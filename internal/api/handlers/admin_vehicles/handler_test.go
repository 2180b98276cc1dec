package admin_vehicles

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-ShuttleService/internal/service/vehicles"
	"github.com/m04kA/SMC-ShuttleService/internal/service/vehicles/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Create(ctx context.Context, req *models.VehicleRequest) (*models.VehicleResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VehicleResponse), args.Error(1)
}

func (m *mockService) Update(ctx context.Context, id int64, req *models.VehicleRequest) (*models.VehicleResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VehicleResponse), args.Error(1)
}

func (m *mockService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(svc *mockService) *mux.Router {
	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/admin/vehicles", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/admin/vehicles/{vehicleId}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/admin/vehicles/{vehicleId}", h.Delete).Methods(http.MethodDelete)
	return r
}

func TestHandler_Create(t *testing.T) {
	svc := new(mockService)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(req *models.VehicleRequest) bool {
		return req.Name == "Van 1" && req.Capacity == 14
	})).Return(&models.VehicleResponse{ID: 1, Name: "Van 1", Capacity: 14}, nil)

	w := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/vehicles",
		strings.NewReader(`{"name":"Van 1","capacity":14}`)))

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestHandler_Delete(t *testing.T) {
	svc := new(mockService)
	svc.On("Delete", mock.Anything, int64(4)).Return(nil)

	w := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/vehicles/4", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_DeleteAssignedVehicle(t *testing.T) {
	svc := new(mockService)
	svc.On("Delete", mock.Anything, int64(4)).Return(vehicles.ErrVehicleInUse)

	w := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/vehicles/4", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), msgVehicleInUse)
}

func TestHandler_UpdateErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", vehicles.ErrVehicleNotFound, http.StatusNotFound},
		{"invalid", vehicles.ErrInvalidInput, http.StatusBadRequest},
		{"internal", vehicles.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			svc.On("Update", mock.Anything, int64(4), mock.Anything).Return(nil, tt.err)

			w := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/admin/vehicles/4",
				strings.NewReader(`{"name":"Van 1","capacity":14}`)))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
