package get_schedules

import (
	"context"

	getSchedules "github.com/m04kA/SMC-ShuttleService/internal/usecase/get_schedules"
)

type GetSchedulesUseCase interface {
	Execute(ctx context.Context, req *getSchedules.Request) (*getSchedules.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
