package get_capacity

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
	getCapacity "github.com/m04kA/SMC-ShuttleService/internal/usecase/get_capacity"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getCapacity.Request) (*getCapacity.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getCapacity.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_WeekView(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getCapacity.Request) bool {
		return req.View == "week" && req.Date != nil && req.Date.Equal(monday.AddDate(0, 0, 2))
	})).Return(&getCapacity.Response{
		View:     getCapacity.ViewWeek,
		DateFrom: monday,
		DateTo:   monday.AddDate(0, 0, 6),
		Days: []getCapacity.Day{{
			Date:           monday,
			TotalCapacity:  12,
			SeatsTaken:     6,
			AvailableSeats: 6,
			OccupancyRate:  50,
			Status:         domain.AvailabilityMedium,
			Departures:     []getCapacity.Departure{{ID: 1, Capacity: 12, SeatsTaken: 6}},
		}},
	}, nil)

	w := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet,
		"/api/v1/admin/schedules/capacity?date=2026-03-04&view=week", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp CapacityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2026-03-02", resp.DateFrom)
	assert.Equal(t, "2026-03-08", resp.DateTo)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, "MEDIUM", resp.Days[0].Status)
}

func TestHandler_InvalidDate(t *testing.T) {
	uc := new(mockUseCase)
	w := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/schedules/capacity?date=tomorrow", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandler_InvalidView(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, getCapacity.ErrInvalidInput)

	w := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/schedules/capacity?view=month", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
