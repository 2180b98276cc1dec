package get_schedules

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// UseCase use case публичного списка расписаний
type UseCase struct {
	scheduleRepo  ScheduleRepository
	departureRepo DepartureRepository
	upcomingLimit int
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	departureRepo DepartureRepository,
	upcomingLimit int,
	logger Logger,
) *UseCase {
	if upcomingLimit <= 0 || upcomingLimit > domain.MaxUpcomingDepartures {
		upcomingLimit = domain.MaxUpcomingDepartures
	}

	return &UseCase{
		scheduleRepo:  scheduleRepo,
		departureRepo: departureRepo,
		upcomingLimit: upcomingLimit,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute возвращает активные расписания активных маршрутов с ближайшими рейсами
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.RouteID != nil && *req.RouteID <= 0 {
		return nil, fmt.Errorf("%w: routeId must be positive", ErrInvalidInput)
	}

	// 1. Активные расписания
	schedules, err := uc.scheduleRepo.List(ctx, domain.ScheduleFilter{
		RouteID:    req.RouteID,
		ActiveOnly: true,
	})
	if err != nil {
		uc.logger.Error("GetSchedules: failed to list schedules: %v", err)
		return nil, fmt.Errorf("%w: failed to list schedules: %w", ErrInternal, err)
	}

	// 2. Публично показываем только расписания активных маршрутов
	visible := make([]*domain.Schedule, 0, len(schedules))
	ids := make([]int64, 0, len(schedules))
	for _, s := range schedules {
		if s.Route == nil || !s.Route.IsActive {
			continue
		}
		visible = append(visible, s)
		ids = append(ids, s.ID)
	}

	// 3. Ближайшие рейсы одним запросом
	today := domain.TruncateToDay(uc.timeProvider.Now())
	departures, err := uc.departureRepo.ListUpcoming(ctx, ids, today, uc.upcomingLimit)
	if err != nil {
		uc.logger.Error("GetSchedules: failed to list upcoming departures: %v", err)
		return nil, fmt.Errorf("%w: failed to list upcoming departures: %w", ErrInternal, err)
	}

	bySchedule := make(map[int64][]UpcomingDeparture, len(visible))
	for _, d := range departures {
		bySchedule[d.ScheduleID] = append(bySchedule[d.ScheduleID], toUpcoming(d))
	}

	resp := &Response{Schedules: make([]Schedule, 0, len(visible))}
	for _, s := range visible {
		upcoming := bySchedule[s.ID]
		if upcoming == nil {
			upcoming = []UpcomingDeparture{}
		}

		resp.Schedules = append(resp.Schedules, Schedule{
			ID:            s.ID,
			DayOfWeek:     s.DayOfWeek,
			EveryDay:      s.EveryDay,
			DepartureTime: s.DepartureTime,
			Capacity:      s.Capacity,
			VehicleID:     s.VehicleID,
			Route: RouteSummary{
				ID:              s.Route.ID,
				Name:            s.Route.Name,
				Origin:          s.Route.Origin,
				Destination:     s.Route.Destination,
				DurationMinutes: s.Route.DurationMinutes,
			},
			Upcoming: upcoming,
		})
	}

	return resp, nil
}

func toUpcoming(d *domain.Departure) UpcomingDeparture {
	availability := d.Availability()
	return UpcomingDeparture{
		ID:                 d.ID,
		Date:               d.DepartureDate,
		Status:             d.Status,
		Capacity:           availability.Capacity,
		SeatsTaken:         availability.SeatsTaken,
		AvailableSeats:     availability.AvailableSeats,
		AvailabilityStatus: availability.Status,
	}
}
