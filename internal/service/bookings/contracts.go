package bookings

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason *string) error
}

// DepartureRepository интерфейс репозитория рейсов
type DepartureRepository interface {
	RefreshBookedSeats(ctx context.Context, id int64) (*domain.Departure, error)
}

// AvailabilityCache интерфейс кэша доступности
type AvailabilityCache interface {
	InvalidateDepartures(ctx context.Context) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
