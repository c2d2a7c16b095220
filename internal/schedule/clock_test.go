package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	testCases := []struct {
		name    string
		value   string
		minutes int
		wantErr bool
	}{
		{name: "Midnight", value: "00:00", minutes: 0},
		{name: "Morning", value: "09:30", minutes: 570},
		{name: "Last minute of day", value: "23:59", minutes: 1439},
		{name: "Missing colon", value: "0930", wantErr: true},
		{name: "Hour out of range", value: "24:00", wantErr: true},
		{name: "Minute out of range", value: "12:60", wantErr: true},
		{name: "Not a number", value: "ab:cd", wantErr: true},
		{name: "Empty", value: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			minutes, err := ParseClock(tc.value)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.minutes, minutes)
			}
		})
	}
}

func TestIsOvernight(t *testing.T) {
	testCases := []struct {
		name      string
		start     string
		end       string
		overnight bool
	}{
		{name: "Day shift", start: "09:00", end: "17:00", overnight: false},
		{name: "Evening shift", start: "14:00", end: "22:00", overnight: false},
		{name: "Night shift", start: "22:00", end: "06:00", overnight: true},
		{name: "Ends at midnight next day", start: "16:00", end: "00:00", overnight: true},
		{name: "Equal times are a 24h shift", start: "08:00", end: "08:00", overnight: true},
		{name: "One minute short of start", start: "08:00", end: "07:59", overnight: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			overnight, err := IsOvernight(tc.start, tc.end)
			assert.NoError(t, err)
			assert.Equal(t, tc.overnight, overnight)
		})
	}
}

func TestSplitShift(t *testing.T) {
	t.Run("Day shift occupies anchor date only", func(t *testing.T) {
		span, err := SplitShift("09:00", "17:00")
		assert.NoError(t, err)
		assert.False(t, span.Overnight)
		assert.Equal(t, Segment{Start: 540, End: 1020}, span.Anchor)
		assert.Nil(t, span.NextDay)
	})

	t.Run("Overnight shift splits across midnight", func(t *testing.T) {
		span, err := SplitShift("22:00", "06:00")
		assert.NoError(t, err)
		assert.True(t, span.Overnight)
		assert.Equal(t, Segment{Start: 1320, End: 1440}, span.Anchor)
		assert.NotNil(t, span.NextDay)
		assert.Equal(t, Segment{Start: 0, End: 360}, *span.NextDay)
	})

	t.Run("Equal times span the full 24 hours", func(t *testing.T) {
		span, err := SplitShift("08:00", "08:00")
		assert.NoError(t, err)
		assert.True(t, span.Overnight)
		assert.Equal(t, 1440, span.Anchor.Duration()+span.NextDay.Duration())
	})

	t.Run("Segment durations sum for all overnight shifts", func(t *testing.T) {
		// (24:00 - start) + end
		overnightCases := []struct {
			start string
			end   string
			total int
		}{
			{start: "22:00", end: "06:00", total: 120 + 360},
			{start: "23:30", end: "00:15", total: 30 + 15},
			{start: "12:00", end: "11:59", total: 720 + 719},
		}

		for _, tc := range overnightCases {
			span, err := SplitShift(tc.start, tc.end)
			assert.NoError(t, err)
			assert.True(t, span.Overnight)
			assert.Equal(t, tc.total, span.Anchor.Duration()+span.NextDay.Duration())
		}
	})

	t.Run("Invalid clock values are rejected", func(t *testing.T) {
		_, err := SplitShift("25:00", "09:00")
		assert.Error(t, err)
		_, err = SplitShift("09:00", "9am")
		assert.Error(t, err)
	})
}
