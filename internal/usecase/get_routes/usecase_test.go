package get_routes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

type fakeRoutes struct {
	routes []*domain.Route
	err    error
}

func (f fakeRoutes) List(_ context.Context, activeOnly bool) ([]*domain.Route, error) {
	if !activeOnly {
		return nil, errors.New("public listing must request active routes only")
	}
	return f.routes, f.err
}

type fakeSchedules struct {
	schedules []*domain.Schedule
	calls     int
}

func (f *fakeSchedules) List(context.Context, domain.ScheduleFilter) ([]*domain.Schedule, error) {
	f.calls++
	return f.schedules, nil
}

type fakeDepartures struct {
	departures []*domain.Departure
	gotIDs     []int64
}

func (f *fakeDepartures) ListUpcoming(_ context.Context, ids []int64, _ time.Time, _ int) ([]*domain.Departure, error) {
	f.gotIDs = ids
	return f.departures, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var routes = []*domain.Route{
	{ID: 1, Name: "Airport", Origin: "Town", Destination: "Airport", DurationMinutes: 45, IsActive: true},
	{ID: 2, Name: "Beach", Origin: "Town", Destination: "Beach", DurationMinutes: 30, IsActive: true},
}

func TestExecute_WithoutSchedules(t *testing.T) {
	schedules := &fakeSchedules{}
	uc := NewUseCase(fakeRoutes{routes: routes}, schedules, &fakeDepartures{}, 30, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{})

	require.NoError(t, err)
	require.Len(t, resp.Routes, 2)
	assert.Nil(t, resp.Routes[0].Schedules)
	assert.Zero(t, schedules.calls)
}

func TestExecute_NestsSchedulesAndDepartures(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	schedules := &fakeSchedules{schedules: []*domain.Schedule{
		{ID: 10, RouteID: 1, DayOfWeek: 1, DepartureTime: "08:00"},
		{ID: 20, RouteID: 2, EveryDay: true, DepartureTime: "10:00"},
		{ID: 30, RouteID: 99, DayOfWeek: 2, DepartureTime: "11:00"},
	}}
	departures := &fakeDepartures{departures: []*domain.Departure{
		{ID: 100, ScheduleID: 10, DepartureDate: day, Capacity: 12, SeatsTaken: 12, Status: domain.DepartureScheduled},
	}}
	uc := NewUseCase(fakeRoutes{routes: routes}, schedules, departures, 30, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{IncludeSchedules: true})

	require.NoError(t, err)
	assert.Equal(t, []int64{10, 20}, departures.gotIDs)

	require.Len(t, resp.Routes[0].Schedules, 1)
	airport := resp.Routes[0].Schedules[0]
	require.Len(t, airport.Departures, 1)
	assert.Equal(t, 12, airport.Departures[0].SeatsTaken)
	assert.Equal(t, 0, airport.Departures[0].AvailableSeats)
	assert.Equal(t, domain.AvailabilityFull, airport.Departures[0].AvailabilityStatus)

	require.Len(t, resp.Routes[1].Schedules, 1)
	assert.Empty(t, resp.Routes[1].Schedules[0].Departures)
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := NewUseCase(fakeRoutes{err: errors.New("db down")}, &fakeSchedules{}, &fakeDepartures{}, 30, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInternal)
}
