package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)
	assert.Equal(t, 540, ts.Minutes())

	for _, bad := range []string{"9:00", "25:00", "09:60", "", "0900"} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeString, bad)
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("23:30")

	next, err := ts.AddMinutes(20)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:50"), next)

	_, err = ts.AddMinutes(45)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("08:15").IsBefore("09:00"))
	assert.True(t, TimeString("18:00").IsAfter("17:59"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
}

func TestTimeString_On(t *testing.T) {
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	at := TimeString("07:45").On(date)
	assert.Equal(t, time.Date(2026, 10, 19, 7, 45, 0, 0, time.UTC), at)
}
