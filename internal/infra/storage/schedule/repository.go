package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	"github.com/m04kA/SMC-ShuttleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShuttleService/pkg/pgerr"
	"github.com/m04kA/SMC-ShuttleService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ShuttleService/pkg/types"
)

// Расписание всегда читается вместе с маршрутом и вместимостью автобуса по умолчанию
var columns = []string{
	"s.id",
	"s.route_id",
	"s.day_of_week",
	"s.every_day",
	"s.departure_time",
	"s.capacity",
	"s.vehicle_id",
	"s.is_active",
	"s.created_at",
	"s.updated_at",
	"r.id",
	"r.name",
	"r.origin",
	"r.destination",
	"r.duration_minutes",
	"r.is_active",
	"v.capacity",
}

// Repository репозиторий расписаний
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает расписание
func (r *Repository) Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedules").
		Columns("route_id", "day_of_week", "every_day", "departure_time", "capacity", "vehicle_id", "is_active").
		Values(
			schedule.RouteID,
			schedule.DayOfWeek,
			schedule.EveryDay,
			schedule.DepartureTime.String(),
			schedule.Capacity,
			schedule.VehicleID,
			schedule.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&schedule.ID, &schedule.CreatedAt, &schedule.UpdatedAt)
	if pgerr.IsForeignKeyViolation(err) {
		return nil, ErrReferenceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return schedule, nil
}

// Update обновляет расписание. Уже созданные рейсы не пересчитываются
func (r *Repository) Update(ctx context.Context, schedule *domain.Schedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedules").
		Set("route_id", schedule.RouteID).
		Set("day_of_week", schedule.DayOfWeek).
		Set("every_day", schedule.EveryDay).
		Set("departure_time", schedule.DepartureTime.String()).
		Set("capacity", schedule.Capacity).
		Set("vehicle_id", schedule.VehicleID).
		Set("is_active", schedule.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": schedule.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if pgerr.IsForeignKeyViolation(err) {
		return ErrReferenceNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

// GetByID получает расписание вместе с маршрутом
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := baseSelect().
		Where(squirrel.Eq{"s.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	schedule, err := scanSchedule(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan schedule: %w", ErrScanRow, err)
	}

	return schedule, nil
}

// List возвращает расписания по фильтру, упорядоченные по маршруту, дню недели и времени
func (r *Repository) List(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := baseSelect().
		OrderBy("s.route_id ASC", "s.every_day DESC", "s.day_of_week ASC", "s.departure_time ASC")

	if filter.RouteID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.route_id": *filter.RouteID})
	}
	if len(filter.IDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.id": filter.IDs})
	}
	if filter.ActiveOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]*domain.Schedule, 0)
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		schedules = append(schedules, schedule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return schedules, nil
}

func baseSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(columns...).
		From("schedules s").
		LeftJoin("routes r ON r.id = s.route_id").
		LeftJoin("vehicles v ON v.id = s.vehicle_id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSchedule(row rowScanner) (*domain.Schedule, error) {
	var (
		s                domain.Schedule
		departureTime    string
		vehicleID        sql.NullInt64
		routeID          sql.NullInt64
		routeName        sql.NullString
		routeOrigin      sql.NullString
		routeDestination sql.NullString
		routeDuration    sql.NullInt32
		routeActive      sql.NullBool
		vehicleCapacity  sql.NullInt32
	)

	err := row.Scan(
		&s.ID,
		&s.RouteID,
		&s.DayOfWeek,
		&s.EveryDay,
		&departureTime,
		&s.Capacity,
		&vehicleID,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
		&routeID,
		&routeName,
		&routeOrigin,
		&routeDestination,
		&routeDuration,
		&routeActive,
		&vehicleCapacity,
	)
	if err != nil {
		return nil, err
	}

	s.DepartureTime = types.TimeString(departureTime)
	if vehicleID.Valid {
		s.VehicleID = &vehicleID.Int64
	}
	if vehicleCapacity.Valid {
		c := int(vehicleCapacity.Int32)
		s.VehicleCapacity = &c
	}
	if routeID.Valid {
		s.Route = &domain.Route{
			ID:              routeID.Int64,
			Name:            routeName.String,
			Origin:          routeOrigin.String,
			Destination:     routeDestination.String,
			DurationMinutes: int(routeDuration.Int32),
			IsActive:        routeActive.Bool,
		}
	}

	return &s, nil
}
