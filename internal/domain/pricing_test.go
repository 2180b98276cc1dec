package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTiers = []*PricingTier{
	{ID: 1, CustomerType: CustomerRegular, BasePrice: 35, IsActive: true},
	{ID: 2, CustomerType: CustomerStudent, BasePrice: 25, IsActive: true},
	{ID: 3, CustomerType: CustomerMilitary, BasePrice: 20, IsActive: false},
}

var testFees = FeeSettings{ExtraLuggageFee: 10, PetFee: 15}

func TestCalculateQuote_OneWay(t *testing.T) {
	q := CalculateQuote(QuoteInput{CustomerType: CustomerRegular, PassengerCount: 2}, testTiers, testFees, 35)

	assert.Equal(t, 70.0, q.Subtotal)
	assert.Equal(t, 70.0, q.Total)
	assert.Equal(t, 0.0, q.Savings)
	require.NotNil(t, q.PricingTierID)
	assert.Equal(t, int64(1), *q.PricingTierID)
}

func TestCalculateQuote_RoundTrip(t *testing.T) {
	q := CalculateQuote(QuoteInput{CustomerType: CustomerRegular, PassengerCount: 2, RoundTrip: true}, testTiers, testFees, 35)

	assert.Equal(t, 70.0, q.Subtotal)
	assert.Equal(t, 126.0, q.Total)
	assert.Equal(t, 14.0, q.Savings)
}

func TestCalculateQuote_AddOns(t *testing.T) {
	q := CalculateQuote(QuoteInput{
		CustomerType:   CustomerStudent,
		PassengerCount: 3,
		ExtraLuggage:   2,
		Pets:           1,
	}, testTiers, testFees, 35)

	assert.Equal(t, CustomerStudent, q.CustomerType)
	assert.Equal(t, 75.0, q.PassengerSubtotal)
	assert.Equal(t, 20.0, q.LuggageSubtotal)
	assert.Equal(t, 15.0, q.PetSubtotal)
	assert.Equal(t, 110.0, q.Total)
}

func TestCalculateQuote_FallsBackToRegular(t *testing.T) {
	// MILITARY tier exists but is inactive
	q := CalculateQuote(QuoteInput{CustomerType: CustomerMilitary, PassengerCount: 1}, testTiers, testFees, 99)

	assert.Equal(t, CustomerRegular, q.CustomerType)
	assert.Equal(t, CustomerMilitary, q.RequestedType)
	assert.Equal(t, 35.0, q.BasePrice)
}

func TestCalculateQuote_DefaultBasePriceWithoutTiers(t *testing.T) {
	q := CalculateQuote(QuoteInput{CustomerType: CustomerLegacy, PassengerCount: 1}, nil, testFees, 35)

	assert.Nil(t, q.PricingTierID)
	assert.Equal(t, 35.0, q.Total)
}

func TestCalculateQuote_RoundsToWholeUnits(t *testing.T) {
	tiers := []*PricingTier{{ID: 1, CustomerType: CustomerRegular, BasePrice: 12.35, IsActive: true}}

	q := CalculateQuote(QuoteInput{CustomerType: CustomerRegular, PassengerCount: 1, RoundTrip: true}, tiers, FeeSettings{}, 0)

	// 12.35 * 2 = 24.7; 90% = 22.23 -> 22; 10% = 2.47 -> 2
	assert.Equal(t, 22.0, q.Total)
	assert.Equal(t, 2.0, q.Savings)
}

func TestCalculateQuote_IsPure(t *testing.T) {
	in := QuoteInput{CustomerType: CustomerStudent, PassengerCount: 4, ExtraLuggage: 1, Pets: 2, RoundTrip: true}

	first, err := json.Marshal(CalculateQuote(in, testTiers, testFees, 35))
	require.NoError(t, err)
	second, err := json.Marshal(CalculateQuote(in, testTiers, testFees, 35))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseCustomerType(t *testing.T) {
	ct, ok := ParseCustomerType(" student ")
	assert.True(t, ok)
	assert.Equal(t, CustomerStudent, ct)

	_, ok = ParseCustomerType("VIP")
	assert.False(t, ok)
}

func TestRequestedCustomerType(t *testing.T) {
	tests := []struct {
		in   string
		want CustomerType
	}{
		{"", CustomerRegular},
		{"  ", CustomerRegular},
		{"military", CustomerMilitary},
		{" senior ", CustomerType("SENIOR")},
		{"a-very-long-customer-type-name-that-is-not-echoed", CustomerRegular},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RequestedCustomerType(tt.in), tt.in)
	}
	assert.False(t, CustomerType("SENIOR").IsKnown())
	assert.True(t, CustomerStudent.IsKnown())
}

func TestCalculateQuote_UnknownTypeUsesRegularTier(t *testing.T) {
	q := CalculateQuote(QuoteInput{CustomerType: RequestedCustomerType("senior"), PassengerCount: 2}, testTiers, testFees, 99)

	assert.Equal(t, CustomerRegular, q.CustomerType)
	assert.Equal(t, CustomerType("SENIOR"), q.RequestedType)
	assert.Equal(t, 35.0, q.BasePrice)
	assert.Equal(t, 70.0, q.Total)
}

func TestParseFeeSettings(t *testing.T) {
	defaults := FeeSettings{ExtraLuggageFee: 10, PetFee: 15}

	fees, err := ParseFeeSettings(map[string]string{SettingPetFee: "20.5"}, defaults)
	require.NoError(t, err)
	assert.Equal(t, 10.0, fees.ExtraLuggageFee)
	assert.Equal(t, 20.5, fees.PetFee)

	fees, err = ParseFeeSettings(map[string]string{SettingExtraLuggageFee: "abc"}, defaults)
	assert.Error(t, err)
	assert.Equal(t, defaults, fees)

	_, err = ParseFeeSettings(map[string]string{SettingPetFee: "-1"}, defaults)
	assert.Error(t, err)
}
