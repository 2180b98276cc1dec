package domain

import (
	"time"

	"github.com/m04kA/SMC-ShuttleService/pkg/types"
)

// DepartureStatus represents the lifecycle status of a departure
type DepartureStatus string

const (
	DepartureScheduled DepartureStatus = "SCHEDULED"
	DepartureBoarding  DepartureStatus = "BOARDING"
	DepartureDeparted  DepartureStatus = "DEPARTED"
	DepartureCompleted DepartureStatus = "COMPLETED"
	DepartureCancelled DepartureStatus = "CANCELLED"
)

// DepartureStatuses lists every valid departure status
var DepartureStatuses = []DepartureStatus{
	DepartureScheduled,
	DepartureBoarding,
	DepartureDeparted,
	DepartureCompleted,
	DepartureCancelled,
}

// IsValid checks that the status is known
func (s DepartureStatus) IsValid() bool {
	for _, st := range DepartureStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Departure is one concrete dated run of a schedule, the unit of seat inventory.
// BookedSeats is a cached projection of SeatsTaken and is refreshed in the same
// transaction that changes bookings or held seats.
type Departure struct {
	ID            int64
	ScheduleID    int64
	DepartureDate time.Time
	Capacity      int
	BookedSeats   int
	HeldSeats     int
	SalesClosed   bool // set by mark-booked; unsold seats stay held from then on
	Status        DepartureStatus
	VehicleID     *int64
	DriverNotes   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined data for listings
	RouteID       int64
	Origin        string
	Destination   string
	DepartureTime types.TimeString

	// SeatsTaken is resolved from held seats + confirmed/paid bookings (not stored)
	SeatsTaken int
}

// IsBookable returns true if seats can be sold on this departure
func (d *Departure) IsBookable() bool {
	return d.Status == DepartureScheduled
}

// ResolveSeats recomputes the seat counters from the passengers of
// live bookings. Once sales are closed every unsold seat is held, so releasing a
// booking never frees a seat for sale.
func (d *Departure) ResolveSeats(live int) {
	if live < 0 {
		live = 0
	}
	if d.SalesClosed {
		d.HeldSeats = max(d.Capacity-live, 0)
	}
	d.SeatsTaken = d.HeldSeats + live
	d.BookedSeats = d.SeatsTaken
}

// Availability projects the departure's resolved seats-taken against its capacity
func (d *Departure) Availability() Availability {
	return ComputeAvailability(d.Capacity, d.SeatsTaken)
}

// NewScheduledDeparture builds a fresh departure for a schedule and date
func NewScheduledDeparture(scheduleID int64, date time.Time, capacity int, vehicleID *int64) *Departure {
	return &Departure{
		ScheduleID:    scheduleID,
		DepartureDate: TruncateToDay(date),
		Capacity:      capacity,
		BookedSeats:   0,
		HeldSeats:     0,
		Status:        DepartureScheduled,
		VehicleID:     vehicleID,
	}
}

// DepartureKey identifies a departure by its schedule and calendar day
type DepartureKey struct {
	ScheduleID int64
	Date       string // YYYY-MM-DD
}

// Key returns the natural key of the departure
func (d *Departure) Key() DepartureKey {
	return DepartureKey{ScheduleID: d.ScheduleID, Date: d.DepartureDate.Format(DateFormat)}
}

// DepartureFilter filters departure listings
type DepartureFilter struct {
	DateFrom    *time.Time // inclusive
	DateTo      *time.Time // inclusive
	RouteID     *int64
	ScheduleIDs []int64
	Statuses    []DepartureStatus
	Limit       int // 0 = no limit
}

// TruncateToDay drops the time-of-day part keeping the date in UTC
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
