package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/api/middleware"
	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	createBooking "github.com/m04kA/SMC-ShuttleService/internal/usecase/create_booking"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createBooking.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc *mockUseCase, body string, userID string) *httptest.ResponseRecorder {
	h := middleware.OptionalUser(http.HandlerFunc(NewHandler(uc, nopLogger{}).Handle))
	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if userID != "" {
		r.Header.Set(middleware.HeaderUserID, userID)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestHandler_Created(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.DepartureID == 7 && req.PassengerCount == 2 && req.UserID == nil && *req.GuestName == "Ann"
	})).Return(&createBooking.Response{
		ID:             1,
		Reference:      "SH-ABC",
		DepartureID:    7,
		DepartureDate:  time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		CustomerType:   string(domain.CustomerRegular),
		PassengerCount: 2,
		TotalPrice:     70,
		Status:         string(domain.StatusConfirmed),
		Quote:          domain.Quote{BasePrice: 35, Subtotal: 70, Total: 70},
	}, nil)

	w := serve(uc, `{"departureId":7,"passengerCount":2,"guestName":"Ann","guestEmail":"ann@example.com"}`, "")

	require.Equal(t, http.StatusCreated, w.Code)
	var resp BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SH-ABC", resp.Reference)
	assert.Equal(t, "2026-03-02", resp.DepartureDate)
	assert.Equal(t, 70.0, resp.Price.Total)
	uc.AssertExpectations(t)
}

func TestHandler_PassesUserID(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.UserID != nil && *req.UserID == 42
	})).Return(&createBooking.Response{ID: 2}, nil)

	w := serve(uc, `{"departureId":7,"passengerCount":1}`, "42")

	assert.Equal(t, http.StatusCreated, w.Code)
	uc.AssertExpectations(t)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"sold out", createBooking.ErrSoldOut, http.StatusConflict, msgSoldOut},
		{"departure not found", createBooking.ErrDepartureNotFound, http.StatusNotFound, msgDepartureNotFound},
		{"not bookable", createBooking.ErrDepartureNotBookable, http.StatusBadRequest, msgDepartureNotBookable},
		{"in past", createBooking.ErrDepartureInPast, http.StatusBadRequest, msgDepartureInPast},
		{
			"invalid input",
			fmt.Errorf("%w: pets must be between 0 and 5", createBooking.ErrInvalidInput),
			http.StatusBadRequest,
			msgInvalidInput + ": pets must be between 0 and 5",
		},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := serve(uc, `{"departureId":7,"passengerCount":3}`, "")

			require.Equal(t, tt.wantStatus, w.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body.Message)
			}
		})
	}
}

func TestHandler_InvalidBody(t *testing.T) {
	uc := new(mockUseCase)

	w := serve(uc, `{"departureId":`, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
