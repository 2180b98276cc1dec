package get_routes

import (
	"context"

	getRoutes "github.com/m04kA/SMC-ShuttleService/internal/usecase/get_routes"
)

type GetRoutesUseCase interface {
	Execute(ctx context.Context, req *getRoutes.Request) (*getRoutes.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
