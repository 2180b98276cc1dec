package calculate_price

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// UseCase use case расчета цены. Результат зависит только от входа, тарифов и настроек
type UseCase struct {
	pricingRepo      PricingRepository
	settingsRepo     SettingsRepository
	defaultFees      domain.FeeSettings
	defaultBasePrice float64
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	pricingRepo PricingRepository,
	settingsRepo SettingsRepository,
	defaultFees domain.FeeSettings,
	defaultBasePrice float64,
	logger Logger,
) *UseCase {
	return &UseCase{
		pricingRepo:      pricingRepo,
		settingsRepo:     settingsRepo,
		defaultFees:      defaultFees,
		defaultBasePrice: defaultBasePrice,
		logger:           logger,
	}
}

// Execute выполняет расчет цены
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	in, err := toQuoteInput(req)
	if err != nil {
		uc.logger.Warn("CalculatePrice: validation failed: %v", err)
		return nil, err
	}

	tiers, err := uc.pricingRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("CalculatePrice: failed to list pricing tiers: %v", err)
		return nil, fmt.Errorf("%w: failed to list pricing tiers: %w", ErrInternal, err)
	}

	values, err := uc.settingsRepo.GetMany(ctx, domain.SettingExtraLuggageFee, domain.SettingPetFee)
	if err != nil {
		uc.logger.Error("CalculatePrice: failed to read fee settings: %v", err)
		return nil, fmt.Errorf("%w: failed to read fee settings: %w", ErrInternal, err)
	}

	fees, err := domain.ParseFeeSettings(values, uc.defaultFees)
	if err != nil {
		uc.logger.Warn("CalculatePrice: %v, using configured defaults", err)
	}

	if !in.CustomerType.IsKnown() {
		uc.logger.Info("CalculatePrice: unknown customerType %s priced as REGULAR", in.CustomerType)
	}

	quote := domain.CalculateQuote(in, tiers, fees, uc.defaultBasePrice)
	if quote.PricingTierID == nil {
		uc.logger.Warn("CalculatePrice: no active tier for %s or REGULAR, default base price %.2f used",
			in.CustomerType, uc.defaultBasePrice)
	}

	return &Response{
		Quote: quote,
		Fees:  fees,
		Tiers: tiers,
	}, nil
}
