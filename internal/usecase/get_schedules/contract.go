package get_schedules

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	List(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.Schedule, error)
}

// DepartureRepository интерфейс репозитория рейсов
type DepartureRepository interface {
	ListUpcoming(ctx context.Context, scheduleIDs []int64, from time.Time, perSchedule int) ([]*domain.Departure, error)
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
