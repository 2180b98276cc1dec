package get_routes

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// UseCase use case списка маршрутов
type UseCase struct {
	routeRepo     RouteRepository
	scheduleRepo  ScheduleRepository
	departureRepo DepartureRepository
	upcomingLimit int
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	routeRepo RouteRepository,
	scheduleRepo ScheduleRepository,
	departureRepo DepartureRepository,
	upcomingLimit int,
	logger Logger,
) *UseCase {
	if upcomingLimit <= 0 || upcomingLimit > domain.MaxUpcomingDepartures {
		upcomingLimit = domain.MaxUpcomingDepartures
	}

	return &UseCase{
		routeRepo:     routeRepo,
		scheduleRepo:  scheduleRepo,
		departureRepo: departureRepo,
		upcomingLimit: upcomingLimit,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute возвращает активные маршруты, при необходимости с расписаниями и рейсами
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	routes, err := uc.routeRepo.List(ctx, true)
	if err != nil {
		uc.logger.Error("GetRoutes: failed to list routes: %v", err)
		return nil, fmt.Errorf("%w: failed to list routes: %w", ErrInternal, err)
	}

	resp := &Response{Routes: make([]Route, 0, len(routes))}
	index := make(map[int64]int, len(routes))
	for i, r := range routes {
		index[r.ID] = i
		resp.Routes = append(resp.Routes, Route{
			ID:              r.ID,
			Name:            r.Name,
			Origin:          r.Origin,
			Destination:     r.Destination,
			DurationMinutes: r.DurationMinutes,
		})
	}

	if !req.IncludeSchedules || len(routes) == 0 {
		return resp, nil
	}

	// 1. Все активные расписания одним запросом
	schedules, err := uc.scheduleRepo.List(ctx, domain.ScheduleFilter{ActiveOnly: true})
	if err != nil {
		uc.logger.Error("GetRoutes: failed to list schedules: %v", err)
		return nil, fmt.Errorf("%w: failed to list schedules: %w", ErrInternal, err)
	}

	ids := make([]int64, 0, len(schedules))
	for _, s := range schedules {
		if _, ok := index[s.RouteID]; ok {
			ids = append(ids, s.ID)
		}
	}

	// 2. Ближайшие рейсы всех расписаний
	today := domain.TruncateToDay(uc.timeProvider.Now())
	departures, err := uc.departureRepo.ListUpcoming(ctx, ids, today, uc.upcomingLimit)
	if err != nil {
		uc.logger.Error("GetRoutes: failed to list upcoming departures: %v", err)
		return nil, fmt.Errorf("%w: failed to list upcoming departures: %w", ErrInternal, err)
	}

	bySchedule := make(map[int64][]Departure, len(ids))
	for _, d := range departures {
		availability := d.Availability()
		bySchedule[d.ScheduleID] = append(bySchedule[d.ScheduleID], Departure{
			ID:                 d.ID,
			Date:               d.DepartureDate,
			Status:             d.Status,
			Capacity:           availability.Capacity,
			SeatsTaken:         availability.SeatsTaken,
			AvailableSeats:     availability.AvailableSeats,
			AvailabilityStatus: availability.Status,
		})
	}

	// 3. Раскладываем по маршрутам
	for i := range resp.Routes {
		resp.Routes[i].Schedules = []Schedule{}
	}
	for _, s := range schedules {
		i, ok := index[s.RouteID]
		if !ok {
			continue
		}
		deps := bySchedule[s.ID]
		if deps == nil {
			deps = []Departure{}
		}
		resp.Routes[i].Schedules = append(resp.Routes[i].Schedules, Schedule{
			ID:            s.ID,
			DayOfWeek:     s.DayOfWeek,
			EveryDay:      s.EveryDay,
			DepartureTime: s.DepartureTime,
			Departures:    deps,
		})
	}

	return resp, nil
}
