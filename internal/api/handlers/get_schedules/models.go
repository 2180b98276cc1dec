package get_schedules

import (
	"strconv"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	getSchedules "github.com/m04kA/SMC-ShuttleService/internal/usecase/get_schedules"
)

// SchedulesResponse HTTP response model
type SchedulesResponse struct {
	Schedules []Schedule `json:"schedules"`
}

// Schedule расписание с маршрутом и ближайшими рейсами
type Schedule struct {
	ID                 int64               `json:"id"`
	DayOfWeek          int                 `json:"dayOfWeek"`
	EveryDay           bool                `json:"everyDay"`
	DepartureTime      string              `json:"departureTime"`
	Capacity           int                 `json:"capacity"`
	VehicleID          *int64              `json:"vehicleId,omitempty"`
	Route              Route               `json:"route"`
	UpcomingDepartures []UpcomingDeparture `json:"upcomingDepartures"`
}

type Route struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	DurationMinutes int    `json:"durationMinutes"`
}

type UpcomingDeparture struct {
	ID                 int64  `json:"id"`
	Date               string `json:"date"`
	Status             string `json:"status"`
	Capacity           int    `json:"capacity"`
	SeatsTaken         int    `json:"seatsTaken"`
	AvailableSeats     int    `json:"availableSeats"`
	AvailabilityStatus string `json:"availabilityStatus"`
}

// ToUseCaseRequest создает запрос use case из query параметра routeId
func ToUseCaseRequest(routeIDStr string) (*getSchedules.Request, error) {
	if routeIDStr == "" {
		return &getSchedules.Request{}, nil
	}

	routeID, err := strconv.ParseInt(routeIDStr, 10, 64)
	if err != nil {
		return nil, err
	}
	return &getSchedules.Request{RouteID: &routeID}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSchedules.Response) *SchedulesResponse {
	schedules := make([]Schedule, len(resp.Schedules))
	for i, s := range resp.Schedules {
		upcoming := make([]UpcomingDeparture, len(s.Upcoming))
		for j, d := range s.Upcoming {
			upcoming[j] = UpcomingDeparture{
				ID:                 d.ID,
				Date:               d.Date.Format(domain.DateFormat),
				Status:             string(d.Status),
				Capacity:           d.Capacity,
				SeatsTaken:         d.SeatsTaken,
				AvailableSeats:     d.AvailableSeats,
				AvailabilityStatus: string(d.AvailabilityStatus),
			}
		}

		schedules[i] = Schedule{
			ID:            s.ID,
			DayOfWeek:     s.DayOfWeek,
			EveryDay:      s.EveryDay,
			DepartureTime: s.DepartureTime.String(),
			Capacity:      s.Capacity,
			VehicleID:     s.VehicleID,
			Route: Route{
				ID:              s.Route.ID,
				Name:            s.Route.Name,
				Origin:          s.Route.Origin,
				Destination:     s.Route.Destination,
				DurationMinutes: s.Route.DurationMinutes,
			},
			UpcomingDepartures: upcoming,
		}
	}

	return &SchedulesResponse{Schedules: schedules}
}
