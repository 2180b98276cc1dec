package route

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
)

var columns = []string{
	"id",
	"name",
	"origin",
	"destination",
	"duration_minutes",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий маршрутов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория маршрутов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает маршрут. Имя маршрута уникально
func (r *Repository) Create(ctx context.Context, route *domain.Route) (*domain.Route, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("routes").
		Columns("name", "origin", "destination", "duration_minutes", "is_active").
		Values(route.Name, route.Origin, route.Destination, route.DurationMinutes, route.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&route.ID, &route.CreatedAt, &route.UpdatedAt)
	if pgerr.IsUniqueViolation(err) {
		return nil, ErrRouteNameTaken
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return route, nil
}

// Update обновляет все изменяемые поля маршрута
func (r *Repository) Update(ctx context.Context, route *domain.Route) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("routes").
		Set("name", route.Name).
		Set("origin", route.Origin).
		Set("destination", route.Destination).
		Set("duration_minutes", route.DurationMinutes).
		Set("is_active", route.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": route.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if pgerr.IsUniqueViolation(err) {
		return ErrRouteNameTaken
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrRouteNotFound
	}

	return nil
}

// GetByID получает маршрут по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("routes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	route, err := scanRoute(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRouteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan route: %w", ErrScanRow, err)
	}

	return route, nil
}

// ExistsByName проверяет, занято ли имя другим маршрутом
// excludeID исключает сам маршрут при обновлении
func (r *Repository) ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	sub := psqlbuilder.Select("1").
		From("routes").
		Where(squirrel.Eq{"name": name})
	if excludeID != nil {
		sub = sub.Where(squirrel.NotEq{"id": *excludeID})
	}

	subQuery, args, err := sub.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByName - build select query: %w", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, "SELECT EXISTS ("+subQuery+")", args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: ExistsByName - scan: %w", ErrScanRow, err)
	}

	return exists, nil
}

// List возвращает маршруты, отсортированные по имени
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*domain.Route, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("routes").
		OrderBy("name ASC")
	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
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

	routes := make([]*domain.Route, 0)
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		routes = append(routes, route)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return routes, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoute(row rowScanner) (*domain.Route, error) {
	var route domain.Route
	err := row.Scan(
		&route.ID,
		&route.Name,
		&route.Origin,
		&route.Destination,
		&route.DurationMinutes,
		&route.IsActive,
		&route.CreatedAt,
		&route.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &route, nil
}
