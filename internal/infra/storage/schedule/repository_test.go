package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	"github.com/m04kA/SMC-ShuttleService/pkg/ptr"
	"github.com/m04kA/SMC-ShuttleService/pkg/types"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

var resultColumns = []string{
	"id", "route_id", "day_of_week", "every_day", "departure_time", "capacity", "vehicle_id", "is_active",
	"created_at", "updated_at",
	"r_id", "r_name", "r_origin", "r_destination", "r_duration", "r_active", "v_capacity",
}

func TestRepository_List_JoinsRouteAndVehicle(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(`FROM schedules s LEFT JOIN routes r ON r.id = s.route_id LEFT JOIN vehicles v ON v.id = s.vehicle_id WHERE s.is_active = \$1`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(resultColumns).
			AddRow(1, 10, 1, false, "08:30", 12, 3, true, now, now, 10, "Airport", "A", "B", 45, true, 16).
			AddRow(2, 11, 1, true, "09:00", 14, nil, true, now, now, nil, nil, nil, nil, nil, nil, nil))

	schedules, err := repo.List(context.Background(), domain.ScheduleFilter{ActiveOnly: true})

	require.NoError(t, err)
	require.Len(t, schedules, 2)

	first := schedules[0]
	assert.Equal(t, types.TimeString("08:30"), first.DepartureTime)
	require.NotNil(t, first.Route)
	assert.Equal(t, "Airport", first.Route.Name)
	require.NotNil(t, first.VehicleCapacity)
	assert.Equal(t, 16, *first.VehicleCapacity)
	assert.Equal(t, int64(3), *first.VehicleID)

	second := schedules[1]
	assert.True(t, second.EveryDay)
	assert.Nil(t, second.Route)
	assert.Nil(t, second.VehicleID)
	assert.Nil(t, second.VehicleCapacity)
}

func TestRepository_Create_UnknownRoute(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`INSERT INTO schedules`).
		WillReturnError(&pq.Error{Code: "23503"})

	_, err := repo.Create(context.Background(), &domain.Schedule{
		RouteID:       404,
		DayOfWeek:     1,
		DepartureTime: "08:00",
		Capacity:      12,
		VehicleID:     ptr.Ptr(int64(1)),
	})

	assert.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`UPDATE schedules SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &domain.Schedule{ID: 5, RouteID: 1, DayOfWeek: 2, DepartureTime: "10:00", Capacity: 10})

	assert.ErrorIs(t, err, ErrScheduleNotFound)
}
