package domain

import (
	"fmt"
	"time"
)

// Interval is a half-open time interval [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval validates that end is strictly after start
func NewInterval(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, fmt.Errorf("%w: start=%s end=%s", ErrInvalidInterval,
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps reports whether two half-open intervals share at least one instant.
// Intervals that only touch at a boundary do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return Overlaps(i.Start, i.End, other.Start, other.End)
}

// Overlaps reports aStart < bEnd && aEnd > bStart
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// DaysBetweenInclusive enumerates calendar days from start's date to end's date
// inclusive, each date taken in its timestamp's own location.
func DaysBetweenInclusive(start, end time.Time) ([]string, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end %s is before start %s", ErrInvalidInterval,
			end.Format(time.RFC3339), start.Format(time.RFC3339))
	}

	cur := civilDate(start)
	last := civilDate(end)

	days := make([]string, 0, daysApart(cur, last)+1)
	for !cur.After(last) {
		days = append(days, cur.Format(DateFormat))
		cur = cur.AddDate(0, 0, 1)
	}
	return days, nil
}

// CountOverlapping counts active bookings overlapping the candidate interval.
// The booking with excludeID (0 = none) is skipped.
func CountOverlapping(candidate Interval, bookings []*Booking, excludeID int64) int {
	count := 0
	for _, b := range bookings {
		if b == nil || !b.IsActive() {
			continue
		}
		if excludeID != 0 && b.ID == excludeID {
			continue
		}
		if candidate.Overlaps(b.Interval()) {
			count++
		}
	}
	return count
}

// HasCapacity reports whether one more booking fits: overlapping < maxPets
func HasCapacity(overlapping, maxPets int) bool {
	return overlapping < maxPets
}

// daysApart counts whole calendar days between two civil dates without
// going through time.Duration, which saturates at about 292 years
func daysApart(from, to time.Time) int {
	return int(civilDate(to).Unix()/secondsPerDay - civilDate(from).Unix()/secondsPerDay)
}

// civilDate drops the clock part keeping the calendar date of t in t's location
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
