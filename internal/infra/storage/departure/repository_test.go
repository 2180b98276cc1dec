package departure

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	"github.com/m04kA/SMC-ShuttleService/pkg/ptr"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func date(s string) time.Time {
	d, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

var departureColumns = []string{
	"id", "schedule_id", "departure_date", "capacity", "booked_seats", "held_seats", "sales_closed", "status",
	"vehicle_id", "driver_notes", "created_at", "updated_at",
	"route_id", "origin", "destination", "departure_time", "seats_taken",
}

func TestSeatsTakenSQL_CountsOnlyConfirmedAndPaid(t *testing.T) {
	assert.Contains(t, seatsTakenSQL, "d.held_seats + ")
	assert.Contains(t, seatsTakenSQL, "b.status IN ('CONFIRMED', 'PAID')")
	assert.NotContains(t, seatsTakenSQL, "PENDING")
	assert.NotContains(t, seatsTakenSQL, "CANCELLED")
}

func TestRepository_SeatsTaken(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+seatsTakenSQL+" FROM departures d WHERE d.id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"taken"}).AddRow(9))

	taken, err := repo.SeatsTaken(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, 9, taken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SeatsTaken_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`FROM departures d WHERE d.id = \$1`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.SeatsTaken(context.Background(), 5)

	assert.ErrorIs(t, err, ErrDepartureNotFound)
}

func TestRepository_RefreshBookedSeats(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE departures d SET held_seats = CASE WHEN d.sales_closed THEN "+closedHeldSQL+" ELSE d.held_seats END, booked_seats = CASE WHEN d.sales_closed THEN "+closedBookedSQL+" ELSE "+seatsTakenSQL+" END, updated_at = NOW() WHERE d.id = $1 RETURNING")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "schedule_id", "departure_date", "capacity", "booked_seats", "held_seats", "sales_closed", "status", "vehicle_id"}).
			AddRow(5, 2, date("2026-03-02"), 12, 7, 2, false, "SCHEDULED", nil))

	d, err := repo.RefreshBookedSeats(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, 12, d.Capacity)
	assert.Equal(t, 7, d.BookedSeats)
	assert.Equal(t, 7, d.SeatsTaken)
	assert.Equal(t, domain.DepartureScheduled, d.Status)
	assert.False(t, d.SalesClosed)
	assert.Nil(t, d.VehicleID)
}

func TestRepository_RefreshBookedSeats_ClosedSalesStayFull(t *testing.T) {
	repo, mock := newRepo(t)

	// после отмены брони на закрытом рейсе освобожденные места ушли в удержанные
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE departures d SET held_seats = CASE WHEN d.sales_closed THEN")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "schedule_id", "departure_date", "capacity", "booked_seats", "held_seats", "sales_closed", "status", "vehicle_id"}).
			AddRow(5, 2, date("2026-03-02"), 12, 12, 9, true, "SCHEDULED", 4))

	d, err := repo.RefreshBookedSeats(context.Background(), 5)

	require.NoError(t, err)
	assert.True(t, d.SalesClosed)
	assert.Equal(t, 9, d.HeldSeats)
	assert.Equal(t, 12, d.SeatsTaken)
	assert.Equal(t, domain.AvailabilityFull, d.Availability().Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ReserveSeats(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "reserved", affected: 1},
		{name: "sold out", affected: 0, wantErr: ErrNotEnoughSeats},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)

			mock.ExpectExec(regexp.QuoteMeta("UPDATE departures SET booked_seats = booked_seats + $1, updated_at = NOW() WHERE id = $2 AND status = $3 AND sales_closed = $4 AND booked_seats + $5 <= capacity")).
				WithArgs(3, int64(5), "SCHEDULED", false, 3).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.ReserveSeats(context.Background(), 5, 3)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_InsertBatch_OnConflictDoNothing(t *testing.T) {
	repo, mock := newRepo(t)

	departures := []*domain.Departure{
		domain.NewScheduledDeparture(1, date("2026-03-02"), 12, nil),
		domain.NewScheduledDeparture(1, date("2026-03-09"), 12, ptr.Ptr(int64(4))),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO departures (schedule_id,departure_date,capacity,booked_seats,held_seats,status,vehicle_id) VALUES ($1,$2,$3,$4,$5,$6,$7),($8,$9,$10,$11,$12,$13,$14) ON CONFLICT (schedule_id, departure_date) DO NOTHING")).
		WithArgs(
			int64(1), "2026-03-02", 12, 0, 0, "SCHEDULED", nil,
			int64(1), "2026-03-09", 12, 0, 0, "SCHEDULED", int64(4),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.InsertBatch(context.Background(), departures)

	require.NoError(t, err)
	assert.Equal(t, int64(1), created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_InsertBatch_Empty(t *testing.T) {
	repo, mock := newRepo(t)

	created, err := repo.InsertBatch(context.Background(), nil)

	require.NoError(t, err)
	assert.Zero(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ExistingKeys(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT schedule_id, departure_date FROM departures WHERE schedule_id IN ($1,$2) AND departure_date >= $3 AND departure_date <= $4")).
		WithArgs(int64(1), int64(2), "2026-03-01", "2026-03-31").
		WillReturnRows(sqlmock.NewRows([]string{"schedule_id", "departure_date"}).
			AddRow(1, date("2026-03-02")).
			AddRow(2, date("2026-03-05")))

	keys, err := repo.ExistingKeys(context.Background(), []int64{1, 2}, date("2026-03-01"), date("2026-03-31"))

	require.NoError(t, err)
	assert.Len(t, keys, 2)
	assert.Contains(t, keys, domain.DepartureKey{ScheduleID: 1, Date: "2026-03-02"})
	assert.Contains(t, keys, domain.DepartureKey{ScheduleID: 2, Date: "2026-03-05"})
}

func TestRepository_MarkBooked(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE departures d SET held_seats = GREATEST(d.capacity - "+liveSeatsSQL+", 0), booked_seats = GREATEST(d.capacity, "+liveSeatsSQL+"), sales_closed = $1")).
		WithArgs(true, "2026-03-01", "2026-03-07", "SCHEDULED", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 4))

	updated, err := repo.MarkBooked(context.Background(), date("2026-03-01"), date("2026-03-07"), []int64{3})

	require.NoError(t, err)
	assert.Equal(t, int64(4), updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(`FROM departures d JOIN schedules s ON s.id = d.schedule_id JOIN routes r ON r.id = s.route_id WHERE d.id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(departureColumns).
			AddRow(5, 2, date("2026-03-02"), 12, 14, 0, false, "SCHEDULED", 4, "gate B", now, now, 1, "Downtown", "Airport", "08:30", 14))

	d, err := repo.GetByID(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "Downtown", d.Origin)
	assert.Equal(t, "gate B", *d.DriverNotes)
	assert.Equal(t, int64(4), *d.VehicleID)

	a := d.Availability()
	assert.Equal(t, 0, a.AvailableSeats)
	assert.True(t, a.Overbooked)
	assert.Equal(t, domain.AvailabilityFull, a.Status)
}

func TestRepository_UpdateDetails_NotFound(t *testing.T) {
	repo, mock := newRepo(t)
	status := domain.DepartureBoarding

	mock.ExpectExec(regexp.QuoteMeta("UPDATE departures SET updated_at = NOW(), status = $1 WHERE id = $2")).
		WithArgs("BOARDING", int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateDetails(context.Background(), 8, &status, nil)

	assert.ErrorIs(t, err, ErrDepartureNotFound)
}

func TestRepository_ListUpcoming_NoSchedules(t *testing.T) {
	repo, mock := newRepo(t)

	departures, err := repo.ListUpcoming(context.Background(), nil, date("2026-03-01"), 30)

	require.NoError(t, err)
	assert.Empty(t, departures)
	assert.NoError(t, mock.ExpectationsWereMet())
}
