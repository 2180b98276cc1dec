package calculate_price

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// PricingRepository интерфейс репозитория тарифов
type PricingRepository interface {
	ListActive(ctx context.Context) ([]*domain.PricingTier, error)
}

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	GetMany(ctx context.Context, keys ...string) (map[string]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
