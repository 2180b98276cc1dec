package get_departures

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	getDepartures "github.com/m04kA/SMC-ShuttleService/internal/usecase/get_departures"
	"github.com/m04kA/SMC-ShuttleService/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getDepartures.Request) (*getDepartures.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getDepartures.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_ForDate(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getDepartures.Request) bool {
		return req.Date != nil && req.Date.Equal(date) && req.RouteID != nil && *req.RouteID == 3
	})).Return(&getDepartures.Response{
		DateFrom: date,
		DateTo:   date,
		Departures: []getDepartures.Departure{{
			ID:                 1,
			ScheduleID:         2,
			RouteID:            3,
			Date:               date,
			DepartureTime:      types.TimeString("08:30"),
			Status:             domain.DepartureScheduled,
			Capacity:           12,
			SeatsTaken:         10,
			AvailableSeats:     2,
			AvailabilityStatus: domain.AvailabilityLow,
		}},
	}, nil)

	w := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/departures?date=2026-03-02&routeId=3", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp DeparturesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Departures, 1)
	assert.Equal(t, "LOW", resp.Departures[0].AvailabilityStatus)
	assert.Equal(t, "08:30", resp.Departures[0].DepartureTime)
	assert.Equal(t, 2, resp.Departures[0].AvailableSeats)
}

func TestHandler_DefaultWindow(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, &getDepartures.Request{}).Return(&getDepartures.Response{}, nil)

	w := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/departures", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	uc.AssertExpectations(t)
}

func TestHandler_InvalidQuery(t *testing.T) {
	for _, q := range []string{"date=02.03.2026", "routeId=abc"} {
		uc := new(mockUseCase)
		w := httptest.NewRecorder()
		NewHandler(uc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/departures?"+q, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code, q)
		uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	}
}

func TestHandler_InternalError(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, getDepartures.ErrInternal)

	w := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/departures", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
