package generate_departures

import (
	"context"

	generateDepartures "github.com/m04kA/SMC-ShuttleService/internal/usecase/generate_departures"
)

type GenerateDeparturesUseCase interface {
	Execute(ctx context.Context, req *generateDepartures.Request) (*generateDepartures.Response, error)
	ExecuteRollingWindow(ctx context.Context, capacity *int) (*generateDepartures.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
