package get_departures

import (
	"context"

	getDepartures "github.com/m04kA/SMC-ShuttleService/internal/usecase/get_departures"
)

type GetDeparturesUseCase interface {
	Execute(ctx context.Context, req *getDepartures.Request) (*getDepartures.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
