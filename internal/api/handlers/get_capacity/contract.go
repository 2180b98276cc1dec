package get_capacity

import (
	"context"

	getCapacity "github.com/m04kA/SMC-ShuttleService/internal/usecase/get_capacity"
)

type GetCapacityUseCase interface {
	Execute(ctx context.Context, req *getCapacity.Request) (*getCapacity.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
