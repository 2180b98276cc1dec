package models

import (
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// RouteRequest запрос на создание или изменение маршрута
type RouteRequest struct {
	Name            string `json:"name"`
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	DurationMinutes int    `json:"durationMinutes"`
	IsActive        *bool  `json:"isActive,omitempty"` // true по умолчанию
}

// RouteResponse ответ с данными маршрута
type RouteResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	DurationMinutes int       `json:"durationMinutes"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// FromDomainRoute конвертирует domain модель в DTO
func FromDomainRoute(r *domain.Route) *RouteResponse {
	if r == nil {
		return nil
	}
	return &RouteResponse{
		ID:              r.ID,
		Name:            r.Name,
		Origin:          r.Origin,
		Destination:     r.Destination,
		DurationMinutes: r.DurationMinutes,
		IsActive:        r.IsActive,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
