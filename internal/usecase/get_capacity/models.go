package get_capacity

import (
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	"github.com/m04kA/SMC-ShuttleService/pkg/types"
)

// View режим отображения календаря
type View string

const (
	ViewDay  View = "day"
	ViewWeek View = "week"
)

// Request модель запроса
type Request struct {
	Date *time.Time // по умолчанию сегодня
	View View       // по умолчанию day
}

// Response загрузка по дням периода
type Response struct {
	View     View
	DateFrom time.Time
	DateTo   time.Time
	Days     []Day
}

// Day сводка загрузки за день. Отмененные рейсы не входят в итоги
type Day struct {
	Date           time.Time
	TotalCapacity  int
	SeatsTaken     int
	AvailableSeats int
	OccupancyRate  float64
	Status         domain.AvailabilityStatus
	Departures     []Departure
}

// Departure загрузка одного рейса
type Departure struct {
	ID                 int64
	ScheduleID         int64
	RouteID            int64
	Origin             string
	Destination        string
	DepartureTime      types.TimeString
	Status             domain.DepartureStatus
	VehicleID          *int64
	Capacity           int
	SeatsTaken         int
	AvailableSeats     int
	OccupancyRate      float64
	AvailabilityStatus domain.AvailabilityStatus
}
