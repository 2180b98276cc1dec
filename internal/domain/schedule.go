package domain

import (
	"time"

	"github.com/m04kA/SMC-ShuttleService/pkg/types"
)

// Schedule is a recurring weekly slot of a route.
// DayOfWeek uses ISO numbering (1 = Monday ... 7 = Sunday) and is ignored when EveryDay is set.
type Schedule struct {
	ID            int64
	RouteID       int64
	DayOfWeek     int
	EveryDay      bool
	DepartureTime types.TimeString
	Capacity      int    // default capacity, 0 = not set
	VehicleID     *int64 // default vehicle for generated departures
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined data (filled by queries that need it)
	Route           *Route
	VehicleCapacity *int
}

// AppliesOn returns true if the schedule runs on the weekday of the given date
func (s *Schedule) AppliesOn(date time.Time) bool {
	if s.EveryDay {
		return true
	}
	return s.DayOfWeek == ISOWeekday(date)
}

// ISOWeekday returns the ISO weekday number of a date (1 = Monday ... 7 = Sunday)
func ISOWeekday(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// IsValidDayOfWeek checks ISO day-of-week bounds
func IsValidDayOfWeek(day int) bool {
	return day >= 1 && day <= 7
}

// ScheduleFilter filters schedule listings
type ScheduleFilter struct {
	RouteID    *int64
	IDs        []int64
	ActiveOnly bool
}
