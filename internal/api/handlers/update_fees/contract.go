package update_fees

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/service/pricing/models"
)

type FeesService interface {
	UpdateFees(ctx context.Context, req *models.UpdateFeesRequest) (*models.FeesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
