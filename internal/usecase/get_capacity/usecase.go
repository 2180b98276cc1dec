package get_capacity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// UseCase use case календаря загрузки для админки
type UseCase struct {
	departureRepo DepartureRepository
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(departureRepo DepartureRepository, logger Logger) *UseCase {
	return &UseCase{
		departureRepo: departureRepo,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute возвращает загрузку за день или за ISO-неделю (пн-вс), содержащую дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	view := View(strings.ToLower(string(req.View)))
	if view == "" {
		view = ViewDay
	}
	if view != ViewDay && view != ViewWeek {
		return nil, fmt.Errorf("%w: view must be day or week", ErrInvalidInput)
	}

	date := uc.timeProvider.Now()
	if req.Date != nil {
		date = *req.Date
	}
	from, to := period(domain.TruncateToDay(date), view)

	departures, err := uc.departureRepo.List(ctx, domain.DepartureFilter{
		DateFrom: &from,
		DateTo:   &to,
	})
	if err != nil {
		uc.logger.Error("GetCapacity: failed to list departures %s..%s: %v",
			from.Format(domain.DateFormat), to.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to list departures: %w", ErrInternal, err)
	}

	// Заранее создаем все дни периода, чтобы пустые дни тоже попали в календарь
	days := make([]Day, 0, 7)
	index := make(map[string]int, 7)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		index[d.Format(domain.DateFormat)] = len(days)
		days = append(days, Day{Date: d, Departures: []Departure{}})
	}

	for _, d := range departures {
		i, ok := index[d.DepartureDate.Format(domain.DateFormat)]
		if !ok {
			continue
		}

		availability := d.Availability()
		if availability.Overbooked {
			uc.logger.Warn("GetCapacity: departure id=%d is overbooked: capacity=%d, taken=%d",
				d.ID, availability.Capacity, availability.SeatsTaken)
		}

		days[i].Departures = append(days[i].Departures, Departure{
			ID:                 d.ID,
			ScheduleID:         d.ScheduleID,
			RouteID:            d.RouteID,
			Origin:             d.Origin,
			Destination:        d.Destination,
			DepartureTime:      d.DepartureTime,
			Status:             d.Status,
			VehicleID:          d.VehicleID,
			Capacity:           availability.Capacity,
			SeatsTaken:         availability.SeatsTaken,
			AvailableSeats:     availability.AvailableSeats,
			OccupancyRate:      availability.OccupancyRate,
			AvailabilityStatus: availability.Status,
		})

		if d.Status == domain.DepartureCancelled {
			continue
		}
		days[i].TotalCapacity += d.Capacity
		days[i].SeatsTaken += availability.SeatsTaken
	}

	for i := range days {
		total := domain.ComputeAvailability(days[i].TotalCapacity, days[i].SeatsTaken)
		days[i].AvailableSeats = total.AvailableSeats
		days[i].OccupancyRate = total.OccupancyRate
		days[i].Status = total.Status
	}

	return &Response{
		View:     view,
		DateFrom: from,
		DateTo:   to,
		Days:     days,
	}, nil
}

func period(day time.Time, view View) (time.Time, time.Time) {
	if view == ViewDay {
		return day, day
	}
	monday := day.AddDate(0, 0, -(domain.ISOWeekday(day) - 1))
	return monday, monday.AddDate(0, 0, 6)
}
