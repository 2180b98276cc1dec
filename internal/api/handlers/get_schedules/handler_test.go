package get_schedules

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
	getSchedules "github.com/m04kA/SMC-ShuttleService/internal/usecase/get_schedules"
	"github.com/m04kA/SMC-ShuttleService/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getSchedules.Request) (*getSchedules.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getSchedules.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_List(t *testing.T) {
	routeID := int64(4)
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, &getSchedules.Request{RouteID: &routeID}).Return(&getSchedules.Response{
		Schedules: []getSchedules.Schedule{{
			ID:            1,
			DayOfWeek:     1,
			DepartureTime: types.TimeString("07:15"),
			Capacity:      12,
			Route:         getSchedules.RouteSummary{ID: 4, Name: "Airport Express"},
			Upcoming: []getSchedules.UpcomingDeparture{{
				ID:                 9,
				Date:               time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
				Status:             domain.DepartureScheduled,
				Capacity:           12,
				SeatsTaken:         3,
				AvailableSeats:     9,
				AvailabilityStatus: domain.AvailabilityHigh,
			}},
		}},
	}, nil)

	w := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/schedules?routeId=4", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp SchedulesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Schedules, 1)
	assert.Equal(t, "Airport Express", resp.Schedules[0].Route.Name)
	assert.Equal(t, "07:15", resp.Schedules[0].DepartureTime)
	require.Len(t, resp.Schedules[0].UpcomingDepartures, 1)
	assert.Equal(t, "2026-03-02", resp.Schedules[0].UpcomingDepartures[0].Date)
	assert.Equal(t, 3, resp.Schedules[0].UpcomingDepartures[0].SeatsTaken)
	assert.Equal(t, 9, resp.Schedules[0].UpcomingDepartures[0].AvailableSeats)
	assert.Contains(t, w.Body.String(), `"seatsTaken":3`)
	assert.Equal(t, "HIGH", resp.Schedules[0].UpcomingDepartures[0].AvailabilityStatus)
}

func TestHandler_InvalidRouteID(t *testing.T) {
	uc := new(mockUseCase)
	w := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/schedules?routeId=x", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandler_InternalError(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, getSchedules.ErrInternal)

	w := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/schedules", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
