package models

import (
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// ScheduleRequest запрос на создание или изменение расписания
type ScheduleRequest struct {
	RouteID       int64  `json:"routeId"`
	DayOfWeek     int    `json:"dayOfWeek"` // ISO: 1 = понедельник ... 7 = воскресенье
	EveryDay      bool   `json:"everyDay"`
	DepartureTime string `json:"departureTime"`      // "08:30"
	Capacity      *int   `json:"capacity,omitempty"` // вместимость по умолчанию из конфигурации
	VehicleID     *int64 `json:"vehicleId,omitempty"`
	IsActive      *bool  `json:"isActive,omitempty"` // true по умолчанию
}

// ScheduleResponse ответ с данными расписания
type ScheduleResponse struct {
	ID            int64     `json:"id"`
	RouteID       int64     `json:"routeId"`
	DayOfWeek     int       `json:"dayOfWeek"`
	EveryDay      bool      `json:"everyDay"`
	DepartureTime string    `json:"departureTime"`
	Capacity      int       `json:"capacity"`
	VehicleID     *int64    `json:"vehicleId,omitempty"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s *domain.Schedule) *ScheduleResponse {
	if s == nil {
		return nil
	}
	return &ScheduleResponse{
		ID:            s.ID,
		RouteID:       s.RouteID,
		DayOfWeek:     s.DayOfWeek,
		EveryDay:      s.EveryDay,
		DepartureTime: s.DepartureTime.String(),
		Capacity:      s.Capacity,
		VehicleID:     s.VehicleID,
		IsActive:      s.IsActive,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
