package models

import (
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// Request модели

// MarkBookedRequest запрос на закрытие продаж по дату включительно
type MarkBookedRequest struct {
	EndDate     string  `json:"endDate"` // "2026-03-15"
	ScheduleIDs []int64 `json:"scheduleIds,omitempty"`
}

// AssignVehicleRequest запрос на назначение автобуса
type AssignVehicleRequest struct {
	DepartureID int64 `json:"departureId"`
	VehicleID   int64 `json:"vehicleId"`
}

// UpdateDepartureRequest запрос на изменение статуса и заметок водителя
type UpdateDepartureRequest struct {
	Status      *string `json:"status,omitempty"`
	DriverNotes *string `json:"driverNotes,omitempty"`
}

// Response модели

// MarkBookedResponse результат закрытия продаж
type MarkBookedResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Updated   int64  `json:"updated"`
}

// DepartureResponse рейс с проекцией мест
type DepartureResponse struct {
	ID                 int64   `json:"id"`
	ScheduleID         int64   `json:"scheduleId"`
	RouteID            int64   `json:"routeId,omitempty"`
	Origin             string  `json:"origin,omitempty"`
	Destination        string  `json:"destination,omitempty"`
	Date               string  `json:"date"`
	DepartureTime      string  `json:"departureTime,omitempty"`
	Status             string  `json:"status"`
	VehicleID          *int64  `json:"vehicleId,omitempty"`
	DriverNotes        *string `json:"driverNotes,omitempty"`
	Capacity           int     `json:"capacity"`
	BookedSeats        int     `json:"bookedSeats"`
	HeldSeats          int     `json:"heldSeats"`
	SeatsTaken         int     `json:"seatsTaken"`
	AvailableSeats     int     `json:"availableSeats"`
	AvailabilityStatus string  `json:"availabilityStatus"`
}

// Manifest PDF-манифест пассажиров
type Manifest struct {
	FileName string
	Content  []byte
}

// Методы конвертации

// FromDomainDeparture конвертирует domain модель в DTO
func FromDomainDeparture(d *domain.Departure) *DepartureResponse {
	if d == nil {
		return nil
	}

	availability := d.Availability()
	return &DepartureResponse{
		ID:                 d.ID,
		ScheduleID:         d.ScheduleID,
		RouteID:            d.RouteID,
		Origin:             d.Origin,
		Destination:        d.Destination,
		Date:               d.DepartureDate.Format(domain.DateFormat),
		DepartureTime:      d.DepartureTime.String(),
		Status:             string(d.Status),
		VehicleID:          d.VehicleID,
		DriverNotes:        d.DriverNotes,
		Capacity:           d.Capacity,
		BookedSeats:        d.BookedSeats,
		HeldSeats:          d.HeldSeats,
		SeatsTaken:         availability.SeatsTaken,
		AvailableSeats:     availability.AvailableSeats,
		AvailabilityStatus: string(availability.Status),
	}
}

// ParseDate разбирает дату в формате YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateFormat, s)
}
