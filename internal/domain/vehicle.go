package domain

import "time"

// Vehicle represents a shuttle bus; its capacity is copied onto departures at assignment time
type Vehicle struct {
	ID              int64
	Name            string
	Capacity        int
	PriceMultiplier float64
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
