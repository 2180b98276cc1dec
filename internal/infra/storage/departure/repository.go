package departure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	"github.com/m04kA/SMC-ShuttleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShuttleService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ShuttleService/pkg/types"
)

// liveSeatsSQL сумма пассажиров подтвержденных и оплаченных бронирований рейса d
var liveSeatsSQL = func() string {
	statuses := make([]string, len(domain.SeatConsumingStatuses))
	for i, s := range domain.SeatConsumingStatuses {
		statuses[i] = "'" + string(s) + "'"
	}
	return "COALESCE((SELECT SUM(b.passenger_count) FROM bookings b" +
		" WHERE b.departure_id = d.id AND b.status IN (" + strings.Join(statuses, ", ") + ")), 0)"
}()

// seatsTakenSQL единственный источник истины о занятых местах
var seatsTakenSQL = "d.held_seats + " + liveSeatsSQL

// closedHeldSQL и closedBookedSQL: после закрытия продаж все непроданные места удержаны
var (
	closedHeldSQL   = "GREATEST(d.capacity - " + liveSeatsSQL + ", 0)"
	closedBookedSQL = "GREATEST(d.capacity, " + liveSeatsSQL + ")"
)

var listColumns = []string{
	"d.id",
	"d.schedule_id",
	"d.departure_date",
	"d.capacity",
	"d.booked_seats",
	"d.held_seats",
	"d.sales_closed",
	"d.status",
	"d.vehicle_id",
	"d.driver_notes",
	"d.created_at",
	"d.updated_at",
	"s.route_id",
	"r.origin",
	"r.destination",
	"s.departure_time",
	seatsTakenSQL + " AS seats_taken",
}

// Repository репозиторий рейсов. Здесь же живет вычисление занятых мест
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рейсов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает рейс с маршрутом и вычисленным количеством занятых мест
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Departure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := baseSelect().
		Where(squirrel.Eq{"d.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	departure, err := scanDeparture(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDepartureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan departure: %w", ErrScanRow, err)
	}

	return departure, nil
}

// List возвращает рейсы по фильтру в хронологическом порядке
func (r *Repository) List(ctx context.Context, filter domain.DepartureFilter) ([]*domain.Departure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := applyFilter(baseSelect(), filter).
		OrderBy("d.departure_date ASC", "s.departure_time ASC", "d.id ASC")
	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(filter.Limit))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, "List", query, args)
}

// ListUpcoming возвращает не более perSchedule ближайших рейсов каждого расписания, начиная с from
func (r *Repository) ListUpcoming(ctx context.Context, scheduleIDs []int64, from time.Time, perSchedule int) ([]*domain.Departure, error) {
	if len(scheduleIDs) == 0 || perSchedule <= 0 {
		return []*domain.Departure{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	inner := baseSelect().
		Column("ROW_NUMBER() OVER (PARTITION BY d.schedule_id ORDER BY d.departure_date ASC) AS rn").
		Where(squirrel.Eq{"d.schedule_id": scheduleIDs}).
		Where(squirrel.GtOrEq{"d.departure_date": from.Format(domain.DateFormat)}).
		Where(squirrel.NotEq{"d.status": string(domain.DepartureCancelled)})

	outerColumns := []string{
		"t.id", "t.schedule_id", "t.departure_date", "t.capacity", "t.booked_seats", "t.held_seats",
		"t.sales_closed", "t.status", "t.vehicle_id", "t.driver_notes", "t.created_at", "t.updated_at",
		"t.route_id", "t.origin", "t.destination", "t.departure_time", "t.seats_taken",
	}

	query, args, err := psqlbuilder.Select(outerColumns...).
		FromSelect(inner, "t").
		Where(squirrel.LtOrEq{"t.rn": perSchedule}).
		OrderBy("t.schedule_id ASC", "t.departure_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcoming - build select query: %w", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, "ListUpcoming", query, args)
}

// ExistingKeys возвращает пары (расписание, дата), для которых рейсы уже существуют
func (r *Repository) ExistingKeys(ctx context.Context, scheduleIDs []int64, from, to time.Time) (map[domain.DepartureKey]struct{}, error) {
	keys := make(map[domain.DepartureKey]struct{})
	if len(scheduleIDs) == 0 {
		return keys, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("schedule_id", "departure_date").
		From("departures").
		Where(squirrel.Eq{"schedule_id": scheduleIDs}).
		Where(squirrel.GtOrEq{"departure_date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"departure_date": to.Format(domain.DateFormat)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ExistingKeys - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ExistingKeys - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			scheduleID int64
			date       time.Time
		)
		if err := rows.Scan(&scheduleID, &date); err != nil {
			return nil, fmt.Errorf("%w: ExistingKeys - scan row: %w", ErrScanRow, err)
		}
		keys[domain.DepartureKey{ScheduleID: scheduleID, Date: date.Format(domain.DateFormat)}] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ExistingKeys - rows error: %w", ErrScanRow, err)
	}

	return keys, nil
}

// InsertBatch вставляет рейсы одним запросом и возвращает количество реально созданных.
// Конфликт по (schedule_id, departure_date) молча пропускается
func (r *Repository) InsertBatch(ctx context.Context, departures []*domain.Departure) (int64, error) {
	if len(departures) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("departures").
		Columns("schedule_id", "departure_date", "capacity", "booked_seats", "held_seats", "status", "vehicle_id")
	for _, d := range departures {
		insertBuilder = insertBuilder.Values(
			d.ScheduleID,
			d.DepartureDate.Format(domain.DateFormat),
			d.Capacity,
			d.BookedSeats,
			d.HeldSeats,
			string(d.Status),
			d.VehicleID,
		)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (schedule_id, departure_date) DO NOTHING").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: InsertBatch - build insert query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: InsertBatch - execute insert: %w", ErrExecQuery, err)
	}

	created, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: InsertBatch - get rows affected: %w", ErrExecQuery, err)
	}

	return created, nil
}

// SeatsTaken вычисляет занятые места: удержанные администратором + пассажиры
// подтвержденных и оплаченных бронирований. Результат не бывает отрицательным
func (r *Repository) SeatsTaken(ctx context.Context, id int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(seatsTakenSQL).
		From("departures d").
		Where(squirrel.Eq{"d.id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: SeatsTaken - build select query: %w", ErrBuildQuery, err)
	}

	var taken int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&taken)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrDepartureNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: SeatsTaken - scan: %w", ErrScanRow, err)
	}

	if taken < 0 {
		taken = 0
	}
	return taken, nil
}

// RefreshBookedSeats пересчитывает кэш booked_seats из агрегата и блокирует строку рейса
// до конца транзакции. На рейсе с закрытыми продажами освобожденные места уходят в удержанные.
// Возвращает актуальное состояние мест
func (r *Repository) RefreshBookedSeats(ctx context.Context, id int64) (*domain.Departure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("departures d").
		Set("held_seats", squirrel.Expr("CASE WHEN d.sales_closed THEN "+closedHeldSQL+" ELSE d.held_seats END")).
		Set("booked_seats", squirrel.Expr("CASE WHEN d.sales_closed THEN "+closedBookedSQL+" ELSE "+seatsTakenSQL+" END")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"d.id": id}).
		Suffix("RETURNING d.id, d.schedule_id, d.departure_date, d.capacity, d.booked_seats, d.held_seats, d.sales_closed, d.status, d.vehicle_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: RefreshBookedSeats - build update query: %w", ErrBuildQuery, err)
	}

	var (
		d         domain.Departure
		vehicleID sql.NullInt64
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&d.ID,
		&d.ScheduleID,
		&d.DepartureDate,
		&d.Capacity,
		&d.BookedSeats,
		&d.HeldSeats,
		&d.SalesClosed,
		&d.Status,
		&vehicleID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDepartureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: RefreshBookedSeats - execute update: %w", ErrExecQuery, err)
	}

	if vehicleID.Valid {
		d.VehicleID = &vehicleID.Int64
	}
	d.SeatsTaken = d.BookedSeats

	return &d, nil
}

// ReserveSeats условно увеличивает booked_seats на n.
// Ноль затронутых строк означает, что мест не хватает или рейс не продается
func (r *Repository) ReserveSeats(ctx context.Context, id int64, n int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("departures").
		Set("booked_seats", squirrel.Expr("booked_seats + ?", n)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": string(domain.DepartureScheduled)}).
		Where(squirrel.Eq{"sales_closed": false}).
		Where("booked_seats + ? <= capacity", n).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReserveSeats - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ReserveSeats - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ReserveSeats - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrNotEnoughSeats
	}

	return nil
}

// MarkBooked закрывает продажи на рейсах по endDate включительно:
// свободные места переводятся в удержанные одним запросом, флаг sales_closed не дает
// последующим отменам вернуть их в продажу
func (r *Repository) MarkBooked(ctx context.Context, from, to time.Time, scheduleIDs []int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("departures d").
		Set("held_seats", squirrel.Expr(closedHeldSQL)).
		Set("booked_seats", squirrel.Expr(closedBookedSQL)).
		Set("sales_closed", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.GtOrEq{"d.departure_date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"d.departure_date": to.Format(domain.DateFormat)}).
		Where(squirrel.Eq{"d.status": string(domain.DepartureScheduled)})
	if len(scheduleIDs) > 0 {
		updateBuilder = updateBuilder.Where(squirrel.Eq{"d.schedule_id": scheduleIDs})
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkBooked - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: MarkBooked - execute update: %w", ErrExecQuery, err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkBooked - get rows affected: %w", ErrExecQuery, err)
	}

	return updated, nil
}

// AssignVehicle назначает автобус и копирует его вместимость на рейс
func (r *Repository) AssignVehicle(ctx context.Context, id, vehicleID int64, capacity int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("departures").
		Set("vehicle_id", vehicleID).
		Set("capacity", capacity).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AssignVehicle - build update query: %w", ErrBuildQuery, err)
	}

	return r.execOne(ctx, executor, "AssignVehicle", query, args)
}

// UpdateDetails обновляет статус и/или заметки водителя. nil поля не меняются
func (r *Repository) UpdateDetails(ctx context.Context, id int64, status *domain.DepartureStatus, driverNotes *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("departures").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})
	if status != nil {
		updateBuilder = updateBuilder.Set("status", string(*status))
	}
	if driverNotes != nil {
		updateBuilder = updateBuilder.Set("driver_notes", *driverNotes)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateDetails - build update query: %w", ErrBuildQuery, err)
	}

	return r.execOne(ctx, executor, "UpdateDetails", query, args)
}

func (r *Repository) execOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrDepartureNotFound
	}

	return nil
}

func (r *Repository) query(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) ([]*domain.Departure, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	departures := make([]*domain.Departure, 0)
	for rows.Next() {
		d, err := scanDeparture(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		departures = append(departures, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return departures, nil
}

func baseSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(listColumns...).
		From("departures d").
		Join("schedules s ON s.id = d.schedule_id").
		Join("routes r ON r.id = s.route_id")
}

func applyFilter(b squirrel.SelectBuilder, filter domain.DepartureFilter) squirrel.SelectBuilder {
	if filter.DateFrom != nil {
		b = b.Where(squirrel.GtOrEq{"d.departure_date": filter.DateFrom.Format(domain.DateFormat)})
	}
	if filter.DateTo != nil {
		b = b.Where(squirrel.LtOrEq{"d.departure_date": filter.DateTo.Format(domain.DateFormat)})
	}
	if filter.RouteID != nil {
		b = b.Where(squirrel.Eq{"s.route_id": *filter.RouteID})
	}
	if len(filter.ScheduleIDs) > 0 {
		b = b.Where(squirrel.Eq{"d.schedule_id": filter.ScheduleIDs})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		b = b.Where(squirrel.Eq{"d.status": statuses})
	}
	return b
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDeparture(row rowScanner) (*domain.Departure, error) {
	var (
		d             domain.Departure
		vehicleID     sql.NullInt64
		driverNotes   sql.NullString
		departureTime string
	)

	err := row.Scan(
		&d.ID,
		&d.ScheduleID,
		&d.DepartureDate,
		&d.Capacity,
		&d.BookedSeats,
		&d.HeldSeats,
		&d.SalesClosed,
		&d.Status,
		&vehicleID,
		&driverNotes,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.RouteID,
		&d.Origin,
		&d.Destination,
		&departureTime,
		&d.SeatsTaken,
	)
	if err != nil {
		return nil, err
	}

	if vehicleID.Valid {
		d.VehicleID = &vehicleID.Int64
	}
	if driverNotes.Valid {
		d.DriverNotes = &driverNotes.String
	}
	d.DepartureTime = types.TimeString(departureTime)
	d.DepartureDate = domain.TruncateToDay(d.DepartureDate)
	if d.SeatsTaken < 0 {
		d.SeatsTaken = 0
	}

	return &d, nil
}
