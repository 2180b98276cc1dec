package get_capacity

import (
	"net/url"
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	getCapacity "github.com/m04kA/SMC-ShuttleService/internal/usecase/get_capacity"
)

// CapacityResponse HTTP response model
type CapacityResponse struct {
	View     string `json:"view"`
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	Days     []Day  `json:"days"`
}

type Day struct {
	Date           string      `json:"date"`
	TotalCapacity  int         `json:"totalCapacity"`
	SeatsTaken     int         `json:"seatsTaken"`
	AvailableSeats int         `json:"availableSeats"`
	OccupancyRate  float64     `json:"occupancyRate"`
	Status         string      `json:"availabilityStatus"`
	Departures     []Departure `json:"departures"`
}

type Departure struct {
	ID                 int64   `json:"id"`
	ScheduleID         int64   `json:"scheduleId"`
	RouteID            int64   `json:"routeId"`
	Origin             string  `json:"origin"`
	Destination        string  `json:"destination"`
	DepartureTime      string  `json:"departureTime"`
	Status             string  `json:"status"`
	VehicleID          *int64  `json:"vehicleId,omitempty"`
	Capacity           int     `json:"capacity"`
	SeatsTaken         int     `json:"seatsTaken"`
	AvailableSeats     int     `json:"availableSeats"`
	OccupancyRate      float64 `json:"occupancyRate"`
	AvailabilityStatus string  `json:"availabilityStatus"`
}

// ToUseCaseRequest создает запрос use case из query параметров date и view
func ToUseCaseRequest(query url.Values) (*getCapacity.Request, error) {
	req := &getCapacity.Request{View: getCapacity.View(query.Get("view"))}

	if s := query.Get("date"); s != "" {
		date, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCapacity.Response) *CapacityResponse {
	days := make([]Day, len(resp.Days))
	for i, d := range resp.Days {
		departures := make([]Departure, len(d.Departures))
		for j, dep := range d.Departures {
			departures[j] = Departure{
				ID:                 dep.ID,
				ScheduleID:         dep.ScheduleID,
				RouteID:            dep.RouteID,
				Origin:             dep.Origin,
				Destination:        dep.Destination,
				DepartureTime:      dep.DepartureTime.String(),
				Status:             string(dep.Status),
				VehicleID:          dep.VehicleID,
				Capacity:           dep.Capacity,
				SeatsTaken:         dep.SeatsTaken,
				AvailableSeats:     dep.AvailableSeats,
				OccupancyRate:      dep.OccupancyRate,
				AvailabilityStatus: string(dep.AvailabilityStatus),
			}
		}

		days[i] = Day{
			Date:           d.Date.Format(domain.DateFormat),
			TotalCapacity:  d.TotalCapacity,
			SeatsTaken:     d.SeatsTaken,
			AvailableSeats: d.AvailableSeats,
			OccupancyRate:  d.OccupancyRate,
			Status:         string(d.Status),
			Departures:     departures,
		}
	}

	return &CapacityResponse{
		View:     string(resp.View),
		DateFrom: resp.DateFrom.Format(domain.DateFormat),
		DateTo:   resp.DateTo.Format(domain.DateFormat),
		Days:     days,
	}
}
