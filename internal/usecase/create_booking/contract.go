package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// DepartureRepository интерфейс репозитория рейсов
type DepartureRepository interface {
	RefreshBookedSeats(ctx context.Context, id int64) (*domain.Departure, error)
	ReserveSeats(ctx context.Context, id int64, n int) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// PricingRepository интерфейс репозитория тарифов
type PricingRepository interface {
	ListActive(ctx context.Context) ([]*domain.PricingTier, error)
}

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	GetMany(ctx context.Context, keys ...string) (map[string]string, error)
}

// AvailabilityCache интерфейс кэша доступности рейсов
type AvailabilityCache interface {
	InvalidateDepartures(ctx context.Context) error
}

// Metrics бизнес-метрики бронирований
type Metrics interface {
	IncBookingsCreated()
	IncBookingsRejected(reason string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
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
