package admin_schedules

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/service/schedules/models"
)

type ScheduleService interface {
	Create(ctx context.Context, req *models.ScheduleRequest) (*models.ScheduleResponse, error)
	Update(ctx context.Context, id int64, req *models.ScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
