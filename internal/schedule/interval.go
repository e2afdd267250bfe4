package schedule

import (
	"fmt"
	"time"

	"github.com/sicparvisventures/reserve4you/internal/domain"
)

const (
	DateLayout  = "2006-01-02"
	clockLayout = "15:04"

	minutesPerDay = 24 * 60
)

// Interval is a half-open [Start, End) range in minutes from midnight.
type Interval struct {
	Start int
	End   int
}

// Overlaps is strict: touching endpoints do not conflict.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && i.End > o.Start
}

// Occupied returns the interval a reservation blocks, buffer included.
func Occupied(r *domain.Reservation) Interval {
	return Interval{Start: r.StartMin, End: r.EndMin()}
}

// ParseClock converts "HH:MM" to minutes from midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid time %q, expected HH:MM", domain.ErrValidation, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes from midnight as "HH:MM".
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// ParseDate validates a calendar date in DateLayout.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", domain.ErrValidation, s)
	}
	return d, nil
}
