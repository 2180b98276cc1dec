package get_schedules

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	"github.com/m04kA/SMC-ShuttleService/pkg/ptr"
)

type mockSchedules struct{ mock.Mock }

func (m *mockSchedules) List(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.Schedule, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Schedule), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockDepartures struct{ mock.Mock }

func (m *mockDepartures) ListUpcoming(ctx context.Context, ids []int64, from time.Time, perSchedule int) ([]*domain.Departure, error) {
	args := m.Called(ctx, ids, from, perSchedule)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Departure), args.Error(1)
	}
	return nil, args.Error(1)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var today = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func newUseCase(s *mockSchedules, d *mockDepartures, limit int) *UseCase {
	uc := NewUseCase(s, d, limit, nopLogger{})
	uc.timeProvider = fixedTime{t: today.Add(9 * time.Hour)}
	return uc
}

func TestExecute_GroupsUpcomingBySchedule(t *testing.T) {
	route := &domain.Route{ID: 1, Name: "Airport", Origin: "Town", Destination: "Airport", DurationMinutes: 45, IsActive: true}
	closed := &domain.Route{ID: 2, Name: "Old line", IsActive: false}

	schedules := &mockSchedules{}
	schedules.On("List", mock.Anything, domain.ScheduleFilter{ActiveOnly: true}).Return([]*domain.Schedule{
		{ID: 10, RouteID: 1, DayOfWeek: 1, DepartureTime: "08:00", Route: route},
		{ID: 11, RouteID: 1, EveryDay: true, DepartureTime: "18:30", Route: route},
		{ID: 12, RouteID: 2, DayOfWeek: 3, DepartureTime: "09:00", Route: closed},
	}, nil)

	departures := &mockDepartures{}
	departures.On("ListUpcoming", mock.Anything, []int64{10, 11}, today, 30).Return([]*domain.Departure{
		{ID: 100, ScheduleID: 10, DepartureDate: today, Capacity: 12, SeatsTaken: 10, Status: domain.DepartureScheduled},
		{ID: 101, ScheduleID: 10, DepartureDate: today.AddDate(0, 0, 7), Capacity: 12, Status: domain.DepartureScheduled},
	}, nil)

	resp, err := newUseCase(schedules, departures, 0).Execute(context.Background(), &Request{})

	require.NoError(t, err)
	require.Len(t, resp.Schedules, 2)

	first := resp.Schedules[0]
	assert.Equal(t, int64(10), first.ID)
	assert.Equal(t, "Airport", first.Route.Name)
	require.Len(t, first.Upcoming, 2)
	assert.Equal(t, 10, first.Upcoming[0].SeatsTaken)
	assert.Equal(t, 2, first.Upcoming[0].AvailableSeats)
	assert.Equal(t, domain.AvailabilityLow, first.Upcoming[0].AvailabilityStatus)
	assert.Equal(t, domain.AvailabilityHigh, first.Upcoming[1].AvailabilityStatus)

	assert.NotNil(t, resp.Schedules[1].Upcoming)
	assert.Empty(t, resp.Schedules[1].Upcoming)
}

func TestExecute_LimitIsCapped(t *testing.T) {
	uc := NewUseCase(&mockSchedules{}, &mockDepartures{}, 500, nopLogger{})
	assert.Equal(t, domain.MaxUpcomingDepartures, uc.upcomingLimit)

	uc = NewUseCase(&mockSchedules{}, &mockDepartures{}, 5, nopLogger{})
	assert.Equal(t, 5, uc.upcomingLimit)
}

func TestExecute_RouteFilter(t *testing.T) {
	schedules := &mockSchedules{}
	schedules.On("List", mock.Anything, domain.ScheduleFilter{RouteID: ptr.Ptr(int64(7)), ActiveOnly: true}).
		Return([]*domain.Schedule{}, nil)
	departures := &mockDepartures{}
	departures.On("ListUpcoming", mock.Anything, []int64{}, today, 30).Return([]*domain.Departure{}, nil)

	resp, err := newUseCase(schedules, departures, 30).Execute(context.Background(), &Request{RouteID: ptr.Ptr(int64(7))})

	require.NoError(t, err)
	assert.Empty(t, resp.Schedules)
	schedules.AssertExpectations(t)
}

func TestExecute_Errors(t *testing.T) {
	_, err := newUseCase(&mockSchedules{}, &mockDepartures{}, 30).Execute(context.Background(), &Request{RouteID: ptr.Ptr(int64(0))})
	assert.ErrorIs(t, err, ErrInvalidInput)

	schedules := &mockSchedules{}
	schedules.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
	_, err = newUseCase(schedules, &mockDepartures{}, 30).Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInternal)
}
