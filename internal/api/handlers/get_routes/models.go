package get_routes

import (
	"strconv"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	getRoutes "github.com/m04kA/SMC-ShuttleService/internal/usecase/get_routes"
)

// RoutesResponse HTTP response model
type RoutesResponse struct {
	Routes []Route `json:"routes"`
}

type Route struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Origin          string     `json:"origin"`
	Destination     string     `json:"destination"`
	DurationMinutes int        `json:"durationMinutes"`
	Schedules       []Schedule `json:"schedules,omitempty"`
}

type Schedule struct {
	ID            int64       `json:"id"`
	DayOfWeek     int         `json:"dayOfWeek"`
	EveryDay      bool        `json:"everyDay"`
	DepartureTime string      `json:"departureTime"`
	Departures    []Departure `json:"departures"`
}

type Departure struct {
	ID                 int64  `json:"id"`
	Date               string `json:"date"`
	Status             string `json:"status"`
	Capacity           int    `json:"capacity"`
	SeatsTaken         int    `json:"seatsTaken"`
	AvailableSeats     int    `json:"availableSeats"`
	AvailabilityStatus string `json:"availabilityStatus"`
}

// ToUseCaseRequest создает запрос use case из query параметра includeSchedules
func ToUseCaseRequest(includeStr string) (*getRoutes.Request, error) {
	if includeStr == "" {
		return &getRoutes.Request{}, nil
	}

	include, err := strconv.ParseBool(includeStr)
	if err != nil {
		return nil, err
	}
	return &getRoutes.Request{IncludeSchedules: include}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRoutes.Response) *RoutesResponse {
	routes := make([]Route, len(resp.Routes))
	for i, r := range resp.Routes {
		var schedules []Schedule
		for _, s := range r.Schedules {
			departures := make([]Departure, len(s.Departures))
			for j, d := range s.Departures {
				departures[j] = Departure{
					ID:                 d.ID,
					Date:               d.Date.Format(domain.DateFormat),
					Status:             string(d.Status),
					Capacity:           d.Capacity,
					SeatsTaken:         d.SeatsTaken,
					AvailableSeats:     d.AvailableSeats,
					AvailabilityStatus: string(d.AvailabilityStatus),
				}
			}
			schedules = append(schedules, Schedule{
				ID:            s.ID,
				DayOfWeek:     s.DayOfWeek,
				EveryDay:      s.EveryDay,
				DepartureTime: s.DepartureTime.String(),
				Departures:    departures,
			})
		}

		routes[i] = Route{
			ID:              r.ID,
			Name:            r.Name,
			Origin:          r.Origin,
			Destination:     r.Destination,
			DurationMinutes: r.DurationMinutes,
			Schedules:       schedules,
		}
	}

	return &RoutesResponse{Routes: routes}
}
