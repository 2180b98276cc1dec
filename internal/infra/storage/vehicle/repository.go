package vehicle

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
	"capacity",
	"price_multiplier",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий автобусов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория автобусов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает автобус
func (r *Repository) Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("vehicles").
		Columns("name", "capacity", "price_multiplier", "is_active").
		Values(vehicle.Name, vehicle.Capacity, vehicle.PriceMultiplier, vehicle.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&vehicle.ID, &vehicle.CreatedAt, &vehicle.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return vehicle, nil
}

// Update обновляет автобус
// Вместимость уже созданных рейсов не меняется: она копируется при назначении
func (r *Repository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("vehicles").
		Set("name", vehicle.Name).
		Set("capacity", vehicle.Capacity).
		Set("price_multiplier", vehicle.PriceMultiplier).
		Set("is_active", vehicle.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": vehicle.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrVehicleNotFound
	}

	return nil
}

// GetByID получает автобус по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("vehicles").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	var vehicle domain.Vehicle
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&vehicle.ID,
		&vehicle.Name,
		&vehicle.Capacity,
		&vehicle.PriceMultiplier,
		&vehicle.IsActive,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan vehicle: %w", ErrScanRow, err)
	}

	return &vehicle, nil
}

// CountReferences считает расписания и рейсы, ссылающиеся на автобус
func (r *Repository) CountReferences(ctx context.Context, id int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	const query = `SELECT
		(SELECT COUNT(*) FROM schedules WHERE vehicle_id = $1) +
		(SELECT COUNT(*) FROM departures WHERE vehicle_id = $1)`

	var count int
	if err := executor.QueryRowContext(ctx, query, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountReferences - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// Delete удаляет автобус. Внешний ключ защищает назначенные автобусы,
// даже если проверка CountReferences проиграла гонку
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("vehicles").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if pgerr.IsForeignKeyViolation(err) {
		return ErrVehicleInUse
	}
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrVehicleNotFound
	}

	return nil
}
