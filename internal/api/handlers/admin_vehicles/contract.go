package admin_vehicles

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/service/vehicles/models"
)

type VehicleService interface {
	Create(ctx context.Context, req *models.VehicleRequest) (*models.VehicleResponse, error)
	Update(ctx context.Context, id int64, req *models.VehicleRequest) (*models.VehicleResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
