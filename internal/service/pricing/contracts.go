package pricing

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// PricingRepository интерфейс репозитория тарифов
type PricingRepository interface {
	ExistsActive(ctx context.Context, customerType domain.CustomerType) (bool, error)
	Create(ctx context.Context, tier *domain.PricingTier) (*domain.PricingTier, error)
	Delete(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountByPricingTier(ctx context.Context, tierID int64) (int, error)
}

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	Upsert(ctx context.Context, key, value string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
