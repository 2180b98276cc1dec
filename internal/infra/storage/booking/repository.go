package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	"github.com/m04kA/SMC-ShuttleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShuttleService/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"reference",
	"departure_id",
	"user_id",
	"guest_name",
	"guest_email",
	"guest_phone",
	"pricing_tier_id",
	"customer_type",
	"passenger_count",
	"extra_luggage",
	"pets",
	"round_trip",
	"total_price",
	"status",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// При создании из usecase вызывается внутри транзакции, в которой уже зарезервированы места
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"reference",
			"departure_id",
			"user_id",
			"guest_name",
			"guest_email",
			"guest_phone",
			"pricing_tier_id",
			"customer_type",
			"passenger_count",
			"extra_luggage",
			"pets",
			"round_trip",
			"total_price",
			"status",
		).
		Values(
			booking.Reference,
			booking.DepartureID,
			booking.UserID,
			booking.GuestName,
			booking.GuestEmail,
			booking.GuestPhone,
			booking.PricingTierID,
			string(booking.CustomerType),
			booking.PassengerCount,
			booking.ExtraLuggage,
			booking.Pets,
			booking.RoundTrip,
			booking.TotalPrice,
			string(booking.Status),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции блокирует строку, чтобы смена статуса не гонялась с другой операцией
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// ListByDeparture возвращает бронирования рейса с указанными статусами (все, если не указаны)
func (r *Repository) ListByDeparture(ctx context.Context, departureID int64, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("bookings").
		Where(squirrel.Eq{"departure_id": departureID}).
		OrderBy("created_at ASC", "id ASC")
	if len(statuses) > 0 {
		values := make([]string, len(statuses))
		for i, s := range statuses {
			values[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": values})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDeparture - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDeparture - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByDeparture - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDeparture - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// CountByPricingTier считает бронирования, оформленные по тарифу
func (r *Repository) CountByPricingTier(ctx context.Context, tierID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"pricing_tier_id": tierID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByPricingTier - build select query: %w", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByPricingTier - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %w", ErrBuildQuery, err)
	}

	return r.execOne(ctx, executor, "UpdateStatus", query, args)
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", string(domain.StatusCancelled)).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %w", ErrBuildQuery, err)
	}

	return r.execOne(ctx, executor, "Cancel", query, args)
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
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует строку в бронирование
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b                  domain.Booking
		userID             sql.NullInt64
		guestName          sql.NullString
		guestEmail         sql.NullString
		guestPhone         sql.NullString
		pricingTierID      sql.NullInt64
		cancellationReason sql.NullString
		cancelledAt        sql.NullTime
	)

	err := row.Scan(
		&b.ID,
		&b.Reference,
		&b.DepartureID,
		&userID,
		&guestName,
		&guestEmail,
		&guestPhone,
		&pricingTierID,
		&b.CustomerType,
		&b.PassengerCount,
		&b.ExtraLuggage,
		&b.Pets,
		&b.RoundTrip,
		&b.TotalPrice,
		&b.Status,
		&cancellationReason,
		&cancelledAt,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if userID.Valid {
		b.UserID = &userID.Int64
	}
	if guestName.Valid {
		b.GuestName = &guestName.String
	}
	if guestEmail.Valid {
		b.GuestEmail = &guestEmail.String
	}
	if guestPhone.Valid {
		b.GuestPhone = &guestPhone.String
	}
	if pricingTierID.Valid {
		b.PricingTierID = &pricingTierID.Int64
	}
	if cancellationReason.Valid {
		b.CancellationReason = &cancellationReason.String
	}
	if cancelledAt.Valid {
		b.CancelledAt = &cancelledAt.Time
	}

	return &b, nil
}
