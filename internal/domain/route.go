package domain

import "time"

// Route represents a shuttle line between two points
type Route struct {
	ID              int64
	Name            string
	Origin          string
	Destination     string
	DurationMinutes int
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
