package get_departures

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// Публичный список не показывает отмененные рейсы
var listedStatuses = []domain.DepartureStatus{
	domain.DepartureScheduled,
	domain.DepartureBoarding,
	domain.DepartureDeparted,
	domain.DepartureCompleted,
}

// UseCase use case для получения рейсов с доступностью мест
type UseCase struct {
	departureRepo DepartureRepository
	cache         AvailabilityCache
	windowDays    int
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	departureRepo DepartureRepository,
	cache AvailabilityCache,
	windowDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		departureRepo: departureRepo,
		cache:         cache,
		windowDays:    windowDays,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case получения рейсов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDepartures: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем период: конкретная дата или окно с сегодняшнего дня
	from, to := uc.period(req.Date)

	// 3. Пробуем кэш. Ключ фиксирует поколение кэша до чтения из базы.
	// Ошибка кэша не должна ломать выдачу
	key, err := uc.cache.DeparturesKey(ctx, from.Format(domain.DateFormat), to.Format(domain.DateFormat), req.RouteID)
	if err != nil {
		uc.logger.Warn("GetDepartures: cache key unavailable, reading without cache: %v", err)
	}
	if key != "" {
		var cached Response
		hit, err := uc.cache.Get(ctx, key, &cached)
		if err != nil {
			uc.logger.Warn("GetDepartures: cache read failed for %s: %v", key, err)
		}
		if hit {
			return &cached, nil
		}
	}

	// 4. Читаем рейсы вместе с вычисленными занятыми местами
	departures, err := uc.departureRepo.List(ctx, domain.DepartureFilter{
		DateFrom: &from,
		DateTo:   &to,
		RouteID:  req.RouteID,
		Statuses: listedStatuses,
	})
	if err != nil {
		uc.logger.Error("GetDepartures: failed to list departures %s..%s: %v",
			from.Format(domain.DateFormat), to.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to list departures: %w", ErrInternal, err)
	}

	// 5. Проекция доступности
	resp := &Response{
		DateFrom:   from,
		DateTo:     to,
		Departures: make([]Departure, 0, len(departures)),
	}
	for _, d := range departures {
		availability := d.Availability()
		if availability.Overbooked {
			uc.logger.Warn("GetDepartures: departure id=%d is overbooked: capacity=%d, taken=%d",
				d.ID, availability.Capacity, availability.SeatsTaken)
		}

		resp.Departures = append(resp.Departures, Departure{
			ID:                 d.ID,
			ScheduleID:         d.ScheduleID,
			RouteID:            d.RouteID,
			Origin:             d.Origin,
			Destination:        d.Destination,
			Date:               d.DepartureDate,
			DepartureTime:      d.DepartureTime,
			Status:             d.Status,
			VehicleID:          d.VehicleID,
			Capacity:           availability.Capacity,
			SeatsTaken:         availability.SeatsTaken,
			AvailableSeats:     availability.AvailableSeats,
			AvailabilityStatus: availability.Status,
		})
	}

	if key != "" {
		if err := uc.cache.Set(ctx, key, resp); err != nil {
			uc.logger.Warn("GetDepartures: cache write failed for %s: %v", key, err)
		}
	}

	uc.logger.Info("GetDepartures: %d departures for %s..%s",
		len(resp.Departures), from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	return resp, nil
}

func (uc *UseCase) period(date *time.Time) (time.Time, time.Time) {
	if date != nil {
		day := domain.TruncateToDay(*date)
		return day, day
	}

	from := domain.TruncateToDay(uc.timeProvider.Now())
	days := uc.windowDays
	if days < 1 {
		days = 1
	}
	return from, from.AddDate(0, 0, days-1)
}
