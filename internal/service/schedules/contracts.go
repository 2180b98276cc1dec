package schedules

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error)
	Update(ctx context.Context, schedule *domain.Schedule) error
	GetByID(ctx context.Context, id int64) (*domain.Schedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
