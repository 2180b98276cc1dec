package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	departureRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/departure"
)

// UseCase use case для создания бронирования
type UseCase struct {
	departureRepo    DepartureRepository
	bookingRepo      BookingRepository
	pricingRepo      PricingRepository
	settingsRepo     SettingsRepository
	cache            AvailabilityCache
	metrics          Metrics
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
	defaultFees      domain.FeeSettings
	defaultBasePrice float64
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	departureRepo DepartureRepository,
	bookingRepo BookingRepository,
	pricingRepo PricingRepository,
	settingsRepo SettingsRepository,
	cache AvailabilityCache,
	metrics Metrics,
	txManager TransactionManager,
	logger Logger,
	defaultFees domain.FeeSettings,
	defaultBasePrice float64,
) *UseCase {
	return &UseCase{
		departureRepo:    departureRepo,
		bookingRepo:      bookingRepo,
		pricingRepo:      pricingRepo,
		settingsRepo:     settingsRepo,
		cache:            cache,
		metrics:          metrics,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
		defaultFees:      defaultFees,
		defaultBasePrice: defaultBasePrice,
	}
}

// Execute выполняет use case создания бронирования
// Проверка мест, резервирование и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: departure=%d, passengers=%d, customerType=%s, roundTrip=%t",
		req.DepartureID, req.PassengerCount, req.CustomerType, req.RoundTrip)

	// 1. Валидация входных данных
	customerType, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var (
		result    *domain.Booking
		quote     domain.Quote
		departure *domain.Departure
	)

	// 2. Все операции с местами в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Пересчитываем кэш занятых мест из агрегата и блокируем строку рейса
		state, err := uc.departureRepo.RefreshBookedSeats(txCtx, req.DepartureID)
		if err != nil {
			if errors.Is(err, departureRepo.ErrDepartureNotFound) {
				uc.logger.Warn("CreateBooking: departure id=%d not found", req.DepartureID)
				return ErrDepartureNotFound
			}
			uc.logger.Error("CreateBooking: failed to refresh seats for departure id=%d: %v", req.DepartureID, err)
			return fmt.Errorf("%w: failed to refresh seats: %w", ErrInternal, err)
		}
		departure = state

		// 2.2. Рейс должен продаваться и не быть в прошлом
		if !state.IsBookable() {
			uc.logger.Warn("CreateBooking: departure id=%d has status %s", state.ID, state.Status)
			return ErrDepartureNotBookable
		}
		if isDateInPast(state.DepartureDate, now) {
			uc.logger.Warn("CreateBooking: departure id=%d is in the past (%s)",
				state.ID, state.DepartureDate.Format(domain.DateFormat))
			return ErrDepartureInPast
		}

		// 2.3. Быстрая проверка по актуальному состоянию
		availability := state.Availability()
		if availability.Overbooked {
			uc.logger.Warn("CreateBooking: departure id=%d is overbooked: capacity=%d, taken=%d",
				state.ID, availability.Capacity, availability.SeatsTaken)
		}
		if !availability.CanFit(req.PassengerCount) {
			uc.logger.Warn("CreateBooking: departure id=%d sold out, %d/%d taken, requested %d",
				state.ID, availability.SeatsTaken, availability.Capacity, req.PassengerCount)
			return ErrSoldOut
		}

		// 2.4. Условное резервирование: ни одной строки = мест не хватило
		if err := uc.departureRepo.ReserveSeats(txCtx, state.ID, req.PassengerCount); err != nil {
			if errors.Is(err, departureRepo.ErrNotEnoughSeats) {
				uc.logger.Warn("CreateBooking: conditional reserve failed for departure id=%d", state.ID)
				return ErrSoldOut
			}
			uc.logger.Error("CreateBooking: failed to reserve seats on departure id=%d: %v", state.ID, err)
			return fmt.Errorf("%w: failed to reserve seats: %w", ErrInternal, err)
		}

		// 2.5. Расчет цены
		quote, err = uc.quote(txCtx, domain.QuoteInput{
			CustomerType:   customerType,
			PassengerCount: req.PassengerCount,
			ExtraLuggage:   req.ExtraLuggage,
			Pets:           req.Pets,
			RoundTrip:      req.RoundTrip,
		})
		if err != nil {
			return err
		}

		// 2.6. Создаем бронирование с денормализованной ценой
		booking := &domain.Booking{
			Reference:      uuid.NewString(),
			DepartureID:    state.ID,
			UserID:         req.UserID,
			GuestName:      req.GuestName,
			GuestEmail:     req.GuestEmail,
			GuestPhone:     req.GuestPhone,
			PricingTierID:  quote.PricingTierID,
			CustomerType:   quote.CustomerType,
			PassengerCount: req.PassengerCount,
			ExtraLuggage:   req.ExtraLuggage,
			Pets:           req.Pets,
			RoundTrip:      req.RoundTrip,
			TotalPrice:     quote.Total,
			Status:         domain.StatusConfirmed,
		}
		if req.UserID != nil {
			booking.GuestName, booking.GuestEmail, booking.GuestPhone = nil, nil, nil
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking on departure id=%d: %v", state.ID, err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSoldOut) {
			uc.metrics.IncBookingsRejected("sold_out")
		}
		if !isKnown(err) {
			uc.logger.Error("CreateBooking: transaction failed for departure id=%d: %v", req.DepartureID, err)
			return nil, fmt.Errorf("%w: %w", ErrInternal, err)
		}
		return nil, err
	}

	uc.metrics.IncBookingsCreated()
	if err := uc.cache.InvalidateDepartures(ctx); err != nil {
		uc.logger.Warn("CreateBooking: failed to invalidate availability cache: %v", err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d ref=%s on departure id=%d",
		result.ID, result.Reference, result.DepartureID)

	return &Response{
		ID:             result.ID,
		Reference:      result.Reference,
		DepartureID:    result.DepartureID,
		DepartureDate:  departure.DepartureDate,
		UserID:         result.UserID,
		GuestName:      result.GuestName,
		GuestEmail:     result.GuestEmail,
		GuestPhone:     result.GuestPhone,
		PricingTierID:  result.PricingTierID,
		CustomerType:   string(result.CustomerType),
		PassengerCount: result.PassengerCount,
		ExtraLuggage:   result.ExtraLuggage,
		Pets:           result.Pets,
		RoundTrip:      result.RoundTrip,
		TotalPrice:     result.TotalPrice,
		Status:         string(result.Status),
		Quote:          quote,
		CreatedAt:      result.CreatedAt,
	}, nil
}

// quote считает цену по активным тарифам и настройкам сборов
func (uc *UseCase) quote(ctx context.Context, in domain.QuoteInput) (domain.Quote, error) {
	tiers, err := uc.pricingRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list pricing tiers: %v", err)
		return domain.Quote{}, fmt.Errorf("%w: failed to list pricing tiers: %w", ErrInternal, err)
	}

	values, err := uc.settingsRepo.GetMany(ctx, domain.SettingExtraLuggageFee, domain.SettingPetFee)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to read fee settings: %v", err)
		return domain.Quote{}, fmt.Errorf("%w: failed to read fee settings: %w", ErrInternal, err)
	}

	fees, err := domain.ParseFeeSettings(values, uc.defaultFees)
	if err != nil {
		uc.logger.Warn("CreateBooking: %v, using configured defaults", err)
	}

	return domain.CalculateQuote(in, tiers, fees, uc.defaultBasePrice), nil
}

func isKnown(err error) bool {
	return errors.Is(err, ErrDepartureNotFound) ||
		errors.Is(err, ErrDepartureNotBookable) ||
		errors.Is(err, ErrDepartureInPast) ||
		errors.Is(err, ErrSoldOut) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInternal)
}
