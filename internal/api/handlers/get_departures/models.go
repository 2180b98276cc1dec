package get_departures

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	getDepartures "github.com/m04kA/SMC-ShuttleService/internal/usecase/get_departures"
)

// DeparturesResponse HTTP response model
type DeparturesResponse struct {
	DateFrom   string      `json:"dateFrom"`
	DateTo     string      `json:"dateTo"`
	Departures []Departure `json:"departures"`
}

// Departure рейс с доступностью мест
type Departure struct {
	ID                 int64  `json:"id"`
	ScheduleID         int64  `json:"scheduleId"`
	RouteID            int64  `json:"routeId"`
	Origin             string `json:"origin"`
	Destination        string `json:"destination"`
	Date               string `json:"date"`
	DepartureTime      string `json:"departureTime"`
	Status             string `json:"status"`
	VehicleID          *int64 `json:"vehicleId,omitempty"`
	Capacity           int    `json:"capacity"`
	SeatsTaken         int    `json:"seatsTaken"`
	AvailableSeats     int    `json:"availableSeats"`
	AvailabilityStatus string `json:"availabilityStatus"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDepartures.Response) *DeparturesResponse {
	departures := make([]Departure, len(resp.Departures))
	for i, d := range resp.Departures {
		departures[i] = Departure{
			ID:                 d.ID,
			ScheduleID:         d.ScheduleID,
			RouteID:            d.RouteID,
			Origin:             d.Origin,
			Destination:        d.Destination,
			Date:               d.Date.Format(domain.DateFormat),
			DepartureTime:      d.DepartureTime.String(),
			Status:             string(d.Status),
			VehicleID:          d.VehicleID,
			Capacity:           d.Capacity,
			SeatsTaken:         d.SeatsTaken,
			AvailableSeats:     d.AvailableSeats,
			AvailabilityStatus: string(d.AvailabilityStatus),
		}
	}

	return &DeparturesResponse{
		DateFrom:   resp.DateFrom.Format(domain.DateFormat),
		DateTo:     resp.DateTo.Format(domain.DateFormat),
		Departures: departures,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(query url.Values) (*getDepartures.Request, error) {
	req := &getDepartures.Request{}

	if s := query.Get("date"); s != "" {
		date, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if s := query.Get("routeId"); s != "" {
		routeID, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, err
		}
		req.RouteID = &routeID
	}

	return req, nil
}
