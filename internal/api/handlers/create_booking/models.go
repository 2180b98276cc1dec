package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	createBooking "github.com/m04kA/SMC-ShuttleService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	DepartureID    int64   `json:"departureId"`
	GuestName      *string `json:"guestName,omitempty"`
	GuestEmail     *string `json:"guestEmail,omitempty"`
	GuestPhone     *string `json:"guestPhone,omitempty"`
	CustomerType   string  `json:"customerType,omitempty"` // REGULAR по умолчанию
	PassengerCount int     `json:"passengerCount"`
	ExtraLuggage   int     `json:"extraLuggage,omitempty"`
	Pets           int     `json:"pets,omitempty"`
	RoundTrip      bool    `json:"roundTrip,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64         `json:"id"`
	Reference      string        `json:"reference"`
	DepartureID    int64         `json:"departureId"`
	DepartureDate  string        `json:"departureDate"`
	UserID         *int64        `json:"userId,omitempty"`
	GuestName      *string       `json:"guestName,omitempty"`
	GuestEmail     *string       `json:"guestEmail,omitempty"`
	GuestPhone     *string       `json:"guestPhone,omitempty"`
	PricingTierID  *int64        `json:"pricingTierId,omitempty"`
	CustomerType   string        `json:"customerType"`
	PassengerCount int           `json:"passengerCount"`
	ExtraLuggage   int           `json:"extraLuggage"`
	Pets           int           `json:"pets"`
	RoundTrip      bool          `json:"roundTrip"`
	TotalPrice     float64       `json:"totalPrice"`
	Status         string        `json:"status"`
	Price          PriceResponse `json:"price"`
	CreatedAt      string        `json:"createdAt"`
}

// PriceResponse расчет цены на момент бронирования
type PriceResponse struct {
	BasePrice       float64 `json:"basePrice"`
	ExtraLuggageFee float64 `json:"extraLuggageFee"`
	PetFee          float64 `json:"petFee"`
	Subtotal        float64 `json:"subtotal"`
	Total           float64 `json:"total"`
	Savings         float64 `json:"savings"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID *int64) *createBooking.Request {
	return &createBooking.Request{
		DepartureID:    r.DepartureID,
		UserID:         userID,
		GuestName:      r.GuestName,
		GuestEmail:     r.GuestEmail,
		GuestPhone:     r.GuestPhone,
		CustomerType:   r.CustomerType,
		PassengerCount: r.PassengerCount,
		ExtraLuggage:   r.ExtraLuggage,
		Pets:           r.Pets,
		RoundTrip:      r.RoundTrip,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		Reference:      resp.Reference,
		DepartureID:    resp.DepartureID,
		DepartureDate:  resp.DepartureDate.Format(domain.DateFormat),
		UserID:         resp.UserID,
		GuestName:      resp.GuestName,
		GuestEmail:     resp.GuestEmail,
		GuestPhone:     resp.GuestPhone,
		PricingTierID:  resp.PricingTierID,
		CustomerType:   resp.CustomerType,
		PassengerCount: resp.PassengerCount,
		ExtraLuggage:   resp.ExtraLuggage,
		Pets:           resp.Pets,
		RoundTrip:      resp.RoundTrip,
		TotalPrice:     resp.TotalPrice,
		Status:         resp.Status,
		Price: PriceResponse{
			BasePrice:       resp.Quote.BasePrice,
			ExtraLuggageFee: resp.Quote.ExtraLuggageFee,
			PetFee:          resp.Quote.PetFee,
			Subtotal:        resp.Quote.Subtotal,
			Total:           resp.Quote.Total,
			Savings:         resp.Quote.Savings,
		},
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
