package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// CustomerType selects the pricing tier
type CustomerType string

const (
	CustomerRegular  CustomerType = "REGULAR"
	CustomerStudent  CustomerType = "STUDENT"
	CustomerMilitary CustomerType = "MILITARY"
	CustomerLegacy   CustomerType = "LEGACY"
)

// CustomerTypes lists every valid customer type
var CustomerTypes = []CustomerType{
	CustomerRegular,
	CustomerStudent,
	CustomerMilitary,
	CustomerLegacy,
}

// ParseCustomerType parses a customer type case-insensitively
func ParseCustomerType(s string) (CustomerType, bool) {
	ct := CustomerType(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range CustomerTypes {
		if ct == known {
			return ct, true
		}
	}
	return "", false
}

// MaxRequestedTypeLength bounds an unknown customer type echoed back in a quote
const MaxRequestedTypeLength = 32

// RequestedCustomerType normalizes a client-supplied customer type.
// Empty input means REGULAR. Unknown values are kept upper-cased so the quote
// prices them with the REGULAR tier and still reports what was requested.
func RequestedCustomerType(s string) CustomerType {
	if ct, ok := ParseCustomerType(s); ok {
		return ct
	}
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if normalized == "" || len(normalized) > MaxRequestedTypeLength {
		return CustomerRegular
	}
	return CustomerType(normalized)
}

// IsKnown reports whether the type has its own pricing tier category
func (c CustomerType) IsKnown() bool {
	_, ok := ParseCustomerType(string(c))
	return ok
}

// PricingTier maps a customer type to a base price per passenger
type PricingTier struct {
	ID           int64
	CustomerType CustomerType
	BasePrice    float64
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FeeSettings are the site-wide add-on fees
type FeeSettings struct {
	ExtraLuggageFee float64
	PetFee          float64
}

// QuoteInput is the input of the pricing calculator
type QuoteInput struct {
	CustomerType   CustomerType
	PassengerCount int
	ExtraLuggage   int
	Pets           int
	RoundTrip      bool
}

// Quote is the full price breakdown
type Quote struct {
	CustomerType      CustomerType // effective type the base price was taken from
	RequestedType     CustomerType
	PricingTierID     *int64
	BasePrice         float64
	PassengerCount    int
	PassengerSubtotal float64
	ExtraLuggage      int
	ExtraLuggageFee   float64
	LuggageSubtotal   float64
	Pets              int
	PetFee            float64
	PetSubtotal       float64
	Subtotal          float64
	RoundTrip         bool
	Total             float64
	Savings           float64
}

// CalculateQuote computes a price quote. It is a pure function of its arguments.
// Base price lookup: active tier of the requested type, then the REGULAR tier,
// then defaultBasePrice. Totals are rounded to the nearest whole currency unit.
func CalculateQuote(in QuoteInput, tiers []*PricingTier, fees FeeSettings, defaultBasePrice float64) Quote {
	tier := findActiveTier(tiers, in.CustomerType)
	if tier == nil {
		tier = findActiveTier(tiers, CustomerRegular)
	}

	q := Quote{
		CustomerType:    CustomerRegular,
		RequestedType:   in.CustomerType,
		BasePrice:       defaultBasePrice,
		PassengerCount:  in.PassengerCount,
		ExtraLuggage:    in.ExtraLuggage,
		ExtraLuggageFee: fees.ExtraLuggageFee,
		Pets:            in.Pets,
		PetFee:          fees.PetFee,
		RoundTrip:       in.RoundTrip,
	}
	if tier != nil {
		id := tier.ID
		q.CustomerType = tier.CustomerType
		q.PricingTierID = &id
		q.BasePrice = tier.BasePrice
	}

	q.PassengerSubtotal = q.BasePrice * float64(in.PassengerCount)
	q.LuggageSubtotal = fees.ExtraLuggageFee * float64(in.ExtraLuggage)
	q.PetSubtotal = fees.PetFee * float64(in.Pets)
	q.Subtotal = q.PassengerSubtotal + q.LuggageSubtotal + q.PetSubtotal

	if in.RoundTrip {
		doubled := q.Subtotal * 2
		q.Total = RoundCurrency(doubled * (100 - RoundTripDiscountPercent) / 100)
		q.Savings = RoundCurrency(doubled * RoundTripDiscountPercent / 100)
	} else {
		q.Total = RoundCurrency(q.Subtotal)
		q.Savings = 0
	}

	return q
}

// RoundCurrency rounds to the nearest whole currency unit, half away from zero
func RoundCurrency(v float64) float64 {
	return math.Round(v)
}

func findActiveTier(tiers []*PricingTier, ct CustomerType) *PricingTier {
	for _, t := range tiers {
		if t != nil && t.IsActive && t.CustomerType == ct {
			return t
		}
	}
	return nil
}

// ParseFeeSettings reads fee settings from stored key/value pairs.
// Missing keys keep the defaults; an unparsable or negative value is an error.
func ParseFeeSettings(values map[string]string, defaults FeeSettings) (FeeSettings, error) {
	fees := defaults

	parse := func(key string, dst *float64) error {
		raw, ok := values[key]
		if !ok {
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || v < 0 {
			return fmt.Errorf("invalid %s setting %q", key, raw)
		}
		*dst = v
		return nil
	}

	if err := parse(SettingExtraLuggageFee, &fees.ExtraLuggageFee); err != nil {
		return defaults, err
	}
	if err := parse(SettingPetFee, &fees.PetFee); err != nil {
		return defaults, err
	}

	return fees, nil
}
