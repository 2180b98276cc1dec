package pricing

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	pricingRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/pricing"
	"github.com/m04kA/SMC-ShuttleService/internal/service/pricing/models"
)

// Service сервис управления тарифами и доплатами
type Service struct {
	pricingRepo  PricingRepository
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса тарифов
func NewService(
	pricingRepo PricingRepository,
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		pricingRepo:  pricingRepo,
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// CreateTier создает тариф. Активный тариф на тип клиента может быть только один:
// проверка до записи плюс частичный уникальный индекс в базе
func (s *Service) CreateTier(ctx context.Context, req *models.CreateTierRequest) (*models.TierResponse, error) {
	customerType, ok := domain.ParseCustomerType(req.CustomerType)
	if !ok {
		return nil, fmt.Errorf("%w: unknown customerType %q", ErrInvalidInput, req.CustomerType)
	}
	if req.BasePrice < 0 {
		return nil, fmt.Errorf("%w: basePrice must not be negative", ErrInvalidInput)
	}

	tier := &domain.PricingTier{
		CustomerType: customerType,
		BasePrice:    req.BasePrice,
		IsActive:     true,
	}
	if req.IsActive != nil {
		tier.IsActive = *req.IsActive
	}

	if tier.IsActive {
		exists, err := s.pricingRepo.ExistsActive(ctx, customerType)
		if err != nil {
			s.logger.Error("CreateTier: failed to check active tier for %s: %v", customerType, err)
			return nil, fmt.Errorf("%w: CreateTier - check active tier: %v", ErrInternal, err)
		}
		if exists {
			s.logger.Warn("CreateTier: active tier for %s already exists", customerType)
			return nil, ErrDuplicateActiveTier
		}
	}

	created, err := s.pricingRepo.Create(ctx, tier)
	if err != nil {
		if errors.Is(err, pricingRepo.ErrDuplicateActiveTier) {
			s.logger.Warn("CreateTier: active tier for %s already exists (unique index)", customerType)
			return nil, ErrDuplicateActiveTier
		}
		s.logger.Error("CreateTier: repository error for %s: %v", customerType, err)
		return nil, fmt.Errorf("%w: CreateTier - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTier: tier id=%d %s=%.2f created", created.ID, created.CustomerType, created.BasePrice)
	return models.FromDomainTier(created), nil
}

// DeleteTier удаляет тариф, если по нему нет бронирований
func (s *Service) DeleteTier(ctx context.Context, id int64) error {
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		used, err := s.bookingRepo.CountByPricingTier(txCtx, id)
		if err != nil {
			return err
		}
		if used > 0 {
			s.logger.Warn("DeleteTier: tier id=%d is used by %d bookings", id, used)
			return ErrTierInUse
		}
		return s.pricingRepo.Delete(txCtx, id)
	})

	switch {
	case err == nil:
		s.logger.Info("DeleteTier: tier id=%d deleted", id)
		return nil
	case errors.Is(err, ErrTierInUse), errors.Is(err, pricingRepo.ErrTierInUse):
		return ErrTierInUse
	case errors.Is(err, pricingRepo.ErrTierNotFound):
		s.logger.Warn("DeleteTier: tier id=%d not found", id)
		return ErrTierNotFound
	default:
		s.logger.Error("DeleteTier: repository error for tier id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteTier - repository error: %v", ErrInternal, err)
	}
}

// UpdateFees обновляет доплаты за багаж и животных. Не указанные поля не меняются
func (s *Service) UpdateFees(ctx context.Context, req *models.UpdateFeesRequest) (*models.FeesResponse, error) {
	if req.ExtraLuggageFee == nil && req.PetFee == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	values := make(map[string]float64, 2)
	if req.ExtraLuggageFee != nil {
		values[domain.SettingExtraLuggageFee] = *req.ExtraLuggageFee
	}
	if req.PetFee != nil {
		values[domain.SettingPetFee] = *req.PetFee
	}
	for key, v := range values {
		if v < 0 {
			return nil, fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, key)
		}
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		for key, v := range values {
			if err := s.settingsRepo.Upsert(txCtx, key, strconv.FormatFloat(v, 'f', -1, 64)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("UpdateFees: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateFees - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateFees: fees updated: %v", values)
	return &models.FeesResponse{
		ExtraLuggageFee: req.ExtraLuggageFee,
		PetFee:          req.PetFee,
	}, nil
}
