package admin_pricing

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/service/pricing/models"
)

type PricingService interface {
	CreateTier(ctx context.Context, req *models.CreateTierRequest) (*models.TierResponse, error)
	DeleteTier(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
