package pricing_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Andydrums87/bookabash-sub001/internal/pricing"
)

func TestParseDate(t *testing.T) {
	t.Run("calendar date", func(t *testing.T) {
		d, err := pricing.ParseDate("2026-10-17")
		require.NoError(t, err)
		require.Equal(t, time.Saturday, d.Weekday())
		require.True(t, d.IsPremiumDay())
	})

	t.Run("timestamp keeps its own calendar date", func(t *testing.T) {
		d, err := pricing.ParseDate("2026-10-16T23:30:00-05:00")
		require.NoError(t, err)
		require.Equal(t, "2026-10-16", d.String())
		require.Equal(t, time.Friday, d.Weekday())
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := pricing.ParseDate("next saturday")
		require.Error(t, err)
	})
}

func TestPartyContext_JSON(t *testing.T) {
	var party pricing.PartyContext
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2026-10-20","guestCount":12}`), &party))
	require.NotNil(t, party.Date)
	require.False(t, party.IsWeekend())
	require.Equal(t, 12, party.GuestCount)

	var noDate pricing.PartyContext
	require.NoError(t, json.Unmarshal([]byte(`{"date":null}`), &noDate))
	require.Nil(t, noDate.Date)
	require.False(t, noDate.IsWeekend())

	encoded, err := json.Marshal(pricing.PartyContext{Date: datePtr(2026, time.October, 17)})
	require.NoError(t, err)
	require.JSONEq(t, `{"date":"2026-10-17"}`, string(encoded))

	require.InDelta(t, pricing.DefaultDurationHours, noDate.WithDefaults().Duration, 0)
}
