package admin_routes

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/service/routes/models"
)

type RouteService interface {
	Create(ctx context.Context, req *models.RouteRequest) (*models.RouteResponse, error)
	Update(ctx context.Context, id int64, req *models.RouteRequest) (*models.RouteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
