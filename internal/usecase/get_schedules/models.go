package get_schedules

import (
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	"github.com/m04kA/SMC-ShuttleService/pkg/types"
)

// Request модель запроса расписаний
type Request struct {
	RouteID *int64 // Фильтр по маршруту (опционально)
}

// Response модель ответа
type Response struct {
	Schedules []Schedule
}

// Schedule расписание с кратким описанием маршрута и ближайшими рейсами
type Schedule struct {
	ID            int64
	DayOfWeek     int
	EveryDay      bool
	DepartureTime types.TimeString
	Capacity      int
	VehicleID     *int64
	Route         RouteSummary
	Upcoming      []UpcomingDeparture
}

// RouteSummary краткая информация о маршруте
type RouteSummary struct {
	ID              int64
	Name            string
	Origin          string
	Destination     string
	DurationMinutes int
}

// UpcomingDeparture ближайший рейс расписания
type UpcomingDeparture struct {
	ID                 int64
	Date               time.Time
	Status             domain.DepartureStatus
	Capacity           int
	SeatsTaken         int
	AvailableSeats     int
	AvailabilityStatus domain.AvailabilityStatus
}
