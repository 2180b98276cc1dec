package models

import (
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             *int64  `json:"-"` // из заголовка X-User-ID
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID             int64   `json:"id"`
	Reference      string  `json:"reference"`
	DepartureID    int64   `json:"departureId"`
	UserID         *int64  `json:"userId,omitempty"`
	GuestName      *string `json:"guestName,omitempty"`
	GuestEmail     *string `json:"guestEmail,omitempty"`
	GuestPhone     *string `json:"guestPhone,omitempty"`
	PricingTierID  *int64  `json:"pricingTierId,omitempty"`
	CustomerType   string  `json:"customerType"`
	PassengerCount int     `json:"passengerCount"`
	ExtraLuggage   int     `json:"extraLuggage"`
	Pets           int     `json:"pets"`
	RoundTrip      bool    `json:"roundTrip"`
	TotalPrice     float64 `json:"totalPrice"`
	Status         string  `json:"status"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		Reference:          b.Reference,
		DepartureID:        b.DepartureID,
		UserID:             b.UserID,
		GuestName:          b.GuestName,
		GuestEmail:         b.GuestEmail,
		GuestPhone:         b.GuestPhone,
		PricingTierID:      b.PricingTierID,
		CustomerType:       string(b.CustomerType),
		PassengerCount:     b.PassengerCount,
		ExtraLuggage:       b.ExtraLuggage,
		Pets:               b.Pets,
		RoundTrip:          b.RoundTrip,
		TotalPrice:         b.TotalPrice,
		Status:             string(b.Status),
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}
