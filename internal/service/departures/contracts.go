package departures

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// DepartureRepository интерфейс репозитория рейсов
type DepartureRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Departure, error)
	RefreshBookedSeats(ctx context.Context, id int64) (*domain.Departure, error)
	MarkBooked(ctx context.Context, from, to time.Time, scheduleIDs []int64) (int64, error)
	AssignVehicle(ctx context.Context, id, vehicleID int64, capacity int) error
	UpdateDetails(ctx context.Context, id int64, status *domain.DepartureStatus, driverNotes *string) error
}

// VehicleRepository интерфейс репозитория автобусов
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListByDeparture(ctx context.Context, departureID int64, statuses []domain.BookingStatus) ([]*domain.Booking, error)
}

// AvailabilityCache интерфейс кэша доступности
type AvailabilityCache interface {
	InvalidateDepartures(ctx context.Context) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
