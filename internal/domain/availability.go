package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Weekday keys used on the wire, index matches time.Weekday
var weekdayKeys = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// WeekdayKeys returns the seven weekday keys in time.Weekday order
func WeekdayKeys() []string {
	return weekdayKeys[:]
}

// ParseWeekday converts a wire key ("mon") to time.Weekday
func ParseWeekday(key string) (time.Weekday, error) {
	for i, k := range weekdayKeys {
		if k == key {
			return time.Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, key)
}

// WeeklyOpen is the weekly open/closed pattern. All seven days are always present.
type WeeklyOpen [7]bool

// AllDaysOpen returns the default weekly pattern
func AllDaysOpen() WeeklyOpen {
	return WeeklyOpen{true, true, true, true, true, true, true}
}

// IsOpen reports whether the caretaker works on the given weekday
func (w WeeklyOpen) IsOpen(day time.Weekday) bool {
	return w[day]
}

// Merge applies a partial patch keyed by weekday key over the current pattern
func (w WeeklyOpen) Merge(patch map[string]bool) (WeeklyOpen, error) {
	merged := w
	for key, open := range patch {
		day, err := ParseWeekday(key)
		if err != nil {
			return w, err
		}
		merged[day] = open
	}
	return merged, nil
}

// ToMap returns the pattern as a map with all seven keys
func (w WeeklyOpen) ToMap() map[string]bool {
	out := make(map[string]bool, len(weekdayKeys))
	for i, k := range weekdayKeys {
		out[k] = w[i]
	}
	return out
}

// MarshalJSON encodes the pattern as {"sun":true,...}
func (w WeeklyOpen) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.ToMap())
}

// UnmarshalJSON decodes a possibly partial object over the all-open default
func (w *WeeklyOpen) UnmarshalJSON(data []byte) error {
	var raw map[string]bool
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	merged, err := AllDaysOpen().Merge(raw)
	if err != nil {
		return err
	}
	*w = merged
	return nil
}

// Availability represents a caretaker's standing capacity
type Availability struct {
	CaretakerID  int64
	MaxPets      int
	BlockedDates []string // YYYY-MM-DD, без дублей, отсортированы
	WeeklyOpen   WeeklyOpen

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultAvailability returns the availability used when a caretaker never configured one
func DefaultAvailability(caretakerID int64) *Availability {
	return &Availability{
		CaretakerID:  caretakerID,
		MaxPets:      DefaultMaxPets,
		BlockedDates: []string{},
		WeeklyOpen:   AllDaysOpen(),
	}
}

// Capacity returns maxPets floored to 1
func (a *Availability) Capacity() int {
	if a.MaxPets < MinMaxPets {
		return MinMaxPets
	}
	return a.MaxPets
}

// IsBlocked reports whether the given day (YYYY-MM-DD) is blocked.
// BlockedDates is treated as an unordered set.
func (a *Availability) IsBlocked(day string) bool {
	for _, d := range a.BlockedDates {
		if d == day {
			return true
		}
	}
	return false
}

func (a *Availability) blockedSet() map[string]struct{} {
	set := make(map[string]struct{}, len(a.BlockedDates))
	for _, d := range a.BlockedDates {
		set[d] = struct{}{}
	}
	return set
}

// FirstBlockedDay enumerates calendar days of [start, end] inclusive and returns
// the first blocked one. end before start is a caller error.
func (a *Availability) FirstBlockedDay(start, end time.Time) (string, bool, error) {
	days, err := DaysBetweenInclusive(start, end)
	if err != nil {
		return "", false, err
	}
	if len(a.BlockedDates) == 0 {
		return "", false, nil
	}

	blocked := a.blockedSet()
	for _, day := range days {
		if _, ok := blocked[day]; ok {
			return day, true, nil
		}
	}
	return "", false, nil
}

// ValidateMaxPets checks the capacity bounds
func ValidateMaxPets(maxPets int) error {
	if maxPets < MinMaxPets || maxPets > MaxMaxPets {
		return fmt.Errorf("%w: must be between %d and %d, got %d", ErrInvalidMaxPets, MinMaxPets, MaxMaxPets, maxPets)
	}
	return nil
}

// NormalizeBlockedDates validates YYYY-MM-DD strings, removes duplicates and sorts them
func NormalizeBlockedDates(dates []string) ([]string, error) {
	if len(dates) > MaxBlockedDates {
		return nil, fmt.Errorf("%w: at most %d allowed", ErrTooManyBlockedDates, MaxBlockedDates)
	}

	seen := make(map[string]struct{}, len(dates))
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		parsed, err := time.Parse(DateFormat, d)
		if err != nil || parsed.Format(DateFormat) != d {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, d)
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}

	sort.Strings(out)
	return out, nil
}
