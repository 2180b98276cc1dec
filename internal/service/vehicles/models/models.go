package models

import (
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// VehicleRequest запрос на создание или изменение автобуса
type VehicleRequest struct {
	Name            string   `json:"name"`
	Capacity        int      `json:"capacity"`
	PriceMultiplier *float64 `json:"priceMultiplier,omitempty"` // 1.0 по умолчанию
	IsActive        *bool    `json:"isActive,omitempty"`        // true по умолчанию
}

// VehicleResponse ответ с данными автобуса
type VehicleResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Capacity        int       `json:"capacity"`
	PriceMultiplier float64   `json:"priceMultiplier"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// FromDomainVehicle конвертирует domain модель в DTO
func FromDomainVehicle(v *domain.Vehicle) *VehicleResponse {
	if v == nil {
		return nil
	}
	return &VehicleResponse{
		ID:              v.ID,
		Name:            v.Name,
		Capacity:        v.Capacity,
		PriceMultiplier: v.PriceMultiplier,
		IsActive:        v.IsActive,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}
