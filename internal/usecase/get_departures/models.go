package get_departures

import (
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	"github.com/m04kA/SMC-ShuttleService/pkg/types"
)

// Request модель запроса списка рейсов
type Request struct {
	Date    *time.Time // Конкретная дата. Если не указана - с сегодняшнего дня на окно выдачи
	RouteID *int64     // Фильтр по маршруту (опционально)
}

// Response модель ответа со списком рейсов
// Кэшируется целиком, поэтому содержит только сериализуемые поля
type Response struct {
	DateFrom   time.Time
	DateTo     time.Time
	Departures []Departure
}

// Departure рейс с проекцией доступности мест
type Departure struct {
	ID                 int64
	ScheduleID         int64
	RouteID            int64
	Origin             string
	Destination        string
	Date               time.Time
	DepartureTime      types.TimeString
	Status             domain.DepartureStatus
	VehicleID          *int64
	Capacity           int
	SeatsTaken         int
	AvailableSeats     int
	AvailabilityStatus domain.AvailabilityStatus
}
