package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeAvailability_Thresholds(t *testing.T) {
	tests := []struct {
		name      string
		capacity  int
		taken     int
		available int
		status    AvailabilityStatus
	}{
		{"empty", 12, 0, 12, AvailabilityHigh},
		{"just below half", 12, 5, 7, AvailabilityHigh},
		{"exactly half", 12, 6, 6, AvailabilityMedium},
		{"below 80", 10, 7, 3, AvailabilityMedium},
		{"exactly 80", 10, 8, 2, AvailabilityLow},
		{"one seat left", 12, 11, 1, AvailabilityLow},
		{"full", 12, 12, 0, AvailabilityFull},
		{"zero capacity", 0, 0, 0, AvailabilityFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := ComputeAvailability(tt.capacity, tt.taken)
			assert.Equal(t, tt.available, a.AvailableSeats)
			assert.Equal(t, tt.status, a.Status)
			assert.False(t, a.Overbooked)
		})
	}
}

func TestComputeAvailability_ClampsOverbooking(t *testing.T) {
	// capacity shrank from 15 to 8 after 10 seats were sold
	a := ComputeAvailability(8, 10)

	assert.Equal(t, 0, a.AvailableSeats)
	assert.Equal(t, AvailabilityFull, a.Status)
	assert.True(t, a.Overbooked)
	assert.Equal(t, 125.0, a.OccupancyRate)
}

func TestComputeAvailability_AvailableIsMaxOfZero(t *testing.T) {
	for capacity := 0; capacity <= 20; capacity++ {
		for taken := 0; taken <= 25; taken++ {
			a := ComputeAvailability(capacity, taken)
			expected := capacity - taken
			if expected < 0 {
				expected = 0
			}
			assert.Equal(t, expected, a.AvailableSeats, "capacity=%d taken=%d", capacity, taken)
		}
	}
}

func TestAvailability_CanFit(t *testing.T) {
	a := ComputeAvailability(12, 9)

	assert.True(t, a.CanFit(3))
	assert.False(t, a.CanFit(4))
	assert.False(t, a.CanFit(0))
}
