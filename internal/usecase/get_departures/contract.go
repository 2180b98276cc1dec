package get_departures

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// DepartureRepository интерфейс репозитория рейсов
type DepartureRepository interface {
	List(ctx context.Context, filter domain.DepartureFilter) ([]*domain.Departure, error)
}

// AvailabilityCache интерфейс кэша списков рейсов
type AvailabilityCache interface {
	DeparturesKey(ctx context.Context, from, to string, routeID *int64) (string, error)
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
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
