package domain

// AvailabilityStatus is a display-only occupancy label
type AvailabilityStatus string

const (
	AvailabilityFull   AvailabilityStatus = "FULL"
	AvailabilityLow    AvailabilityStatus = "LOW"
	AvailabilityMedium AvailabilityStatus = "MEDIUM"
	AvailabilityHigh   AvailabilityStatus = "HIGH"
)

// Availability is the projection of seats taken against capacity
type Availability struct {
	Capacity       int
	SeatsTaken     int
	AvailableSeats int // clamped to >= 0
	Status         AvailabilityStatus
	OccupancyRate  float64 // 0-100+, not clamped
	Overbooked     bool    // seats taken exceed capacity (e.g. capacity shrink after assignment)
}

// ComputeAvailability is the single implementation of the availability projection,
// shared by per-departure listings and the admin capacity views
func ComputeAvailability(capacity, seatsTaken int) Availability {
	if seatsTaken < 0 {
		seatsTaken = 0
	}

	available := capacity - seatsTaken
	overbooked := available < 0
	if available < 0 {
		available = 0
	}

	var rate float64
	if capacity > 0 {
		rate = float64(seatsTaken) / float64(capacity) * 100
	}

	return Availability{
		Capacity:       capacity,
		SeatsTaken:     seatsTaken,
		AvailableSeats: available,
		Status:         occupancyStatus(capacity, seatsTaken),
		OccupancyRate:  rate,
		Overbooked:     overbooked,
	}
}

// CanFit is the actual booking gate; the status label is only a hint
func (a Availability) CanFit(passengers int) bool {
	return passengers > 0 && passengers <= a.AvailableSeats
}

func occupancyStatus(capacity, seatsTaken int) AvailabilityStatus {
	if capacity <= 0 {
		return AvailabilityFull
	}

	// integer arithmetic keeps the thresholds exact
	taken := seatsTaken * 100
	switch {
	case taken >= capacity*FullThresholdPercent:
		return AvailabilityFull
	case taken >= capacity*LowThresholdPercent:
		return AvailabilityLow
	case taken >= capacity*MediumThresholdPercent:
		return AvailabilityMedium
	default:
		return AvailabilityHigh
	}
}
