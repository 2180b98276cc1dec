package models

import (
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// CreateTierRequest запрос на создание тарифа
type CreateTierRequest struct {
	CustomerType string  `json:"customerType"`
	BasePrice    float64 `json:"basePrice"`
	IsActive     *bool   `json:"isActive,omitempty"` // true по умолчанию
}

// UpdateFeesRequest запрос на изменение доплат
type UpdateFeesRequest struct {
	ExtraLuggageFee *float64 `json:"extraLuggageFee,omitempty"`
	PetFee          *float64 `json:"petFee,omitempty"`
}

// TierResponse ответ с данными тарифа
type TierResponse struct {
	ID           int64     `json:"id"`
	CustomerType string    `json:"customerType"`
	BasePrice    float64   `json:"basePrice"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FeesResponse ответ с обновленными доплатами
type FeesResponse struct {
	ExtraLuggageFee *float64 `json:"extraLuggageFee,omitempty"`
	PetFee          *float64 `json:"petFee,omitempty"`
}

// FromDomainTier конвертирует domain модель в DTO
func FromDomainTier(t *domain.PricingTier) *TierResponse {
	if t == nil {
		return nil
	}
	return &TierResponse{
		ID:           t.ID,
		CustomerType: string(t.CustomerType),
		BasePrice:    t.BasePrice,
		IsActive:     t.IsActive,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
