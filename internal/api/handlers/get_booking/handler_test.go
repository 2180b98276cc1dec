package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-ShuttleService/internal/api/middleware"
	"github.com/m04kA/SMC-ShuttleService/internal/service/bookings"
	"github.com/m04kA/SMC-ShuttleService/internal/service/bookings/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetByID(ctx context.Context, id int64, userID *int64) (*models.BookingResponse, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *mockService, path, userID string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.OptionalUser)
	r.HandleFunc("/bookings/{bookingId}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Get(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		err        error
		wantStatus int
	}{
		{"guest booking", "", nil, http.StatusOK},
		{"owner", "3", nil, http.StatusOK},
		{"other user", "4", bookings.ErrAccessDenied, http.StatusForbidden},
		{"not found", "", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"internal", "", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			if tt.err != nil {
				svc.On("GetByID", mock.Anything, int64(11), mock.Anything).Return(nil, tt.err)
			} else {
				svc.On("GetByID", mock.Anything, int64(11), mock.Anything).Return(&models.BookingResponse{ID: 11}, nil)
			}

			w := serve(svc, "/bookings/11", tt.userID)

			assert.Equal(t, tt.wantStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_InvalidID(t *testing.T) {
	svc := new(mockService)

	w := serve(svc, "/bookings/-1", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}
