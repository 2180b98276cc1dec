package admin_departures

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/service/departures/models"
)

type DepartureService interface {
	MarkBooked(ctx context.Context, req *models.MarkBookedRequest) (*models.MarkBookedResponse, error)
	AssignVehicle(ctx context.Context, req *models.AssignVehicleRequest) (*models.DepartureResponse, error)
	UpdateDetails(ctx context.Context, id int64, req *models.UpdateDepartureRequest) (*models.DepartureResponse, error)
	Manifest(ctx context.Context, id int64) (*models.Manifest, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
