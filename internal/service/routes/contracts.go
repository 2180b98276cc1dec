package routes

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// RouteRepository интерфейс репозитория маршрутов
type RouteRepository interface {
	Create(ctx context.Context, route *domain.Route) (*domain.Route, error)
	Update(ctx context.Context, route *domain.Route) error
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
	ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error)
}

// AvailabilityCache интерфейс кэша доступности (в кэше лежат названия пунктов маршрута)
type AvailabilityCache interface {
	InvalidateDepartures(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
