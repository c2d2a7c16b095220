package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// Segment is a half-open interval of minutes within one calendar day,
// Start inclusive, End exclusive, End at most 1440.
type Segment struct {
	Start int
	End   int
}

// Duration returns the segment length in minutes
func (s Segment) Duration() int {
	return s.End - s.Start
}

// Span is the resolved occupied time of a shift. An overnight shift
// occupies the Anchor segment on its anchor date and the NextDay
// segment on the following calendar day.
type Span struct {
	Overnight bool
	Anchor    Segment
	NextDay   *Segment
}

// ParseClock parses an HH:MM 24-hour clock value into minutes since midnight
func ParseClock(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", value)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid hour in clock value %q", value)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid minute in clock value %q", value)
	}

	return hours*60 + minutes, nil
}

// IsOvernight reports whether a shift with the given times crosses
// midnight. Equal start and end times are treated as a full 24-hour
// shift, so they count as overnight too.
func IsOvernight(startTime, endTime string) (bool, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return false, err
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return false, err
	}
	return end <= start, nil
}

// SplitShift resolves the occupied span of a shift. Overnight shifts
// are split into [start, 24:00) on the anchor date and [00:00, end)
// on the following day; day shifts occupy [start, end) only.
func SplitShift(startTime, endTime string) (Span, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return Span{}, err
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return Span{}, err
	}

	if end <= start {
		return Span{
			Overnight: true,
			Anchor:    Segment{Start: start, End: minutesPerDay},
			NextDay:   &Segment{Start: 0, End: end},
		}, nil
	}

	return Span{
		Anchor: Segment{Start: start, End: end},
	}, nil
}
