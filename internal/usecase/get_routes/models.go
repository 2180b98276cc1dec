package get_routes

import (
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	"github.com/m04kA/SMC-ShuttleService/pkg/types"
)

// Request модель запроса маршрутов
type Request struct {
	IncludeSchedules bool
}

// Response модель ответа
type Response struct {
	Routes []Route
}

// Route маршрут; Schedules заполняется только при IncludeSchedules
type Route struct {
	ID              int64
	Name            string
	Origin          string
	Destination     string
	DurationMinutes int
	Schedules       []Schedule
}

// Schedule расписание маршрута с ближайшими рейсами
type Schedule struct {
	ID            int64
	DayOfWeek     int
	EveryDay      bool
	DepartureTime types.TimeString
	Departures    []Departure
}

// Departure ближайший рейс
type Departure struct {
	ID                 int64
	Date               time.Time
	Status             domain.DepartureStatus
	Capacity           int
	SeatsTaken         int
	AvailableSeats     int
	AvailabilityStatus domain.AvailabilityStatus
}
