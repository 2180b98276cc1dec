package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusPaid      BookingStatus = "PAID"
	StatusCancelled BookingStatus = "CANCELLED"
)

// SeatConsumingStatuses are the statuses counted by the capacity resolver
var SeatConsumingStatuses = []BookingStatus{
	StatusConfirmed,
	StatusPaid,
}

// Booking represents a seat reservation on a departure
type Booking struct {
	ID             int64
	Reference      string // public booking code shown to the customer
	DepartureID    int64
	UserID         *int64 // registered customer, nil for guests
	GuestName      *string
	GuestEmail     *string
	GuestPhone     *string
	PricingTierID  *int64
	CustomerType   CustomerType
	PassengerCount int
	ExtraLuggage   int
	Pets           int
	RoundTrip      bool
	TotalPrice     float64 // quoted total, denormalized at booking time
	Status         BookingStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ConsumesSeats returns true if the booking is counted against departure capacity
func (b *Booking) ConsumesSeats() bool {
	for _, s := range SeatConsumingStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed || b.Status == StatusPaid
}

// CanBeMarkedPaid returns true if a payment can be recorded for the booking
func (b *Booking) CanBeMarkedPaid() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsGuest returns true if the booking was made without a registered account
func (b *Booking) IsGuest() bool {
	return b.UserID == nil
}

// CustomerName returns a display name for manifests
func (b *Booking) CustomerName() string {
	if b.GuestName != nil && *b.GuestName != "" {
		return *b.GuestName
	}
	return ""
}
