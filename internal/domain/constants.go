package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinCapacity                 = 1
	MaxCapacity                 = 100
	MinPassengersPerBooking     = 1
	MaxPassengersPerBooking     = 20
	MaxExtraLuggage             = 20
	MaxPets                     = 5
	MaxGenerateRangeDays        = 366
	MaxUpcomingDepartures       = 30
	MaxRouteNameLength          = 120
	MaxDriverNotesLength        = 1000
	MaxCancellationReasonLength = 500
	MinPriceMultiplier          = 0.1
	MaxPriceMultiplier          = 10.0
)

// Occupancy thresholds (percent of capacity already taken)
const (
	FullThresholdPercent   = 100
	LowThresholdPercent    = 80
	MediumThresholdPercent = 50
)

// Round trip discount, percent of the doubled subtotal
const RoundTripDiscountPercent = 10

// Setting keys for site-wide fee configuration stored in the settings table
const (
	SettingExtraLuggageFee = "extraLuggageFee"
	SettingPetFee          = "petFee"
)
