package pricing

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
	"customer_type",
	"base_price",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий тарифов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тарифов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActive возвращает активные тарифы, упорядоченные по типу клиента
func (r *Repository) ListActive(ctx context.Context) ([]*domain.PricingTier, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("pricing_tiers").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("customer_type ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	tiers := make([]*domain.PricingTier, 0)
	for rows.Next() {
		tier, err := scanTier(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %w", ErrScanRow, err)
		}
		tiers = append(tiers, tier)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %w", ErrScanRow, err)
	}

	return tiers, nil
}

// GetByID получает тариф по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.PricingTier, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("pricing_tiers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	tier, err := scanTier(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTierNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan tier: %w", ErrScanRow, err)
	}

	return tier, nil
}

// ExistsActive проверяет наличие активного тарифа для типа клиента
func (r *Repository) ExistsActive(ctx context.Context, customerType domain.CustomerType) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	subQuery, args, err := psqlbuilder.Select("1").
		From("pricing_tiers").
		Where(squirrel.Eq{"customer_type": string(customerType), "is_active": true}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsActive - build select query: %w", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, "SELECT EXISTS ("+subQuery+")", args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: ExistsActive - scan: %w", ErrScanRow, err)
	}

	return exists, nil
}

// Create создает тариф. Частичный уникальный индекс не допускает двух активных тарифов одного типа
func (r *Repository) Create(ctx context.Context, tier *domain.PricingTier) (*domain.PricingTier, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("pricing_tiers").
		Columns("customer_type", "base_price", "is_active").
		Values(string(tier.CustomerType), tier.BasePrice, tier.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&tier.ID, &tier.CreatedAt, &tier.UpdatedAt)
	if pgerr.IsUniqueViolation(err) {
		return nil, ErrDuplicateActiveTier
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return tier, nil
}

// Delete удаляет тариф
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("pricing_tiers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if pgerr.IsForeignKeyViolation(err) {
		return ErrTierInUse
	}
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrTierNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTier(row rowScanner) (*domain.PricingTier, error) {
	var tier domain.PricingTier
	err := row.Scan(
		&tier.ID,
		&tier.CustomerType,
		&tier.BasePrice,
		&tier.IsActive,
		&tier.CreatedAt,
		&tier.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tier, nil
}
