// Package schedule turns event date/time strings into comparable intervals
// and detects time and venue conflicts between them.
package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Wire formats accepted from callers.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "3:04 PM"

	displayTime = "03:04 PM"
)

// ErrInvalidSchedule is returned when a date or time cannot be parsed, or
// when an event ends before it starts.
var ErrInvalidSchedule = errors.New("invalid schedule input")

// Interval is a closed [Start, End] range of instants.
type Interval struct {
	Start time.Time
	End   time.Time
}

// ParseInterval combines a date with start and end times into an Interval.
func ParseInterval(date, start, end string) (Interval, error) {
	s, err := parseInstant(date, start)
	if err != nil {
		return Interval{}, fmt.Errorf("start time: %w", err)
	}
	e, err := parseInstant(date, end)
	if err != nil {
		return Interval{}, fmt.Errorf("end time: %w", err)
	}
	if e.Before(s) {
		return Interval{}, fmt.Errorf("%w: end %s is before start %s", ErrInvalidSchedule, end, start)
	}
	return Interval{Start: s, End: e}, nil
}

func parseInstant(date, clock string) (time.Time, error) {
	date = strings.TrimSpace(date)
	clock = strings.ToUpper(strings.TrimSpace(clock))
	t, err := time.Parse(DateLayout+" "+TimeLayout, date+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q %q: %v", ErrInvalidSchedule, date, clock, err)
	}
	return t, nil
}

// Overlaps reports whether the intervals share at least one instant.
// Bounds are inclusive: an interval ending exactly when another starts overlaps it.
func (i Interval) Overlaps(other Interval) bool {
	return !i.Start.After(other.End) && !i.End.Before(other.Start)
}

// Intersect returns [max(starts), min(ends)]. Only meaningful when Overlaps is true.
func (i Interval) Intersect(other Interval) Interval {
	out := i
	if other.Start.After(out.Start) {
		out.Start = other.Start
	}
	if other.End.Before(out.End) {
		out.End = other.End
	}
	return out
}

// Slot is a parsed event placement: where and when.
type Slot struct {
	Date     string
	Venue    string
	Interval Interval
}

// NewSlot parses the wire-format date and times of an event.
func NewSlot(date, start, end, venue string) (Slot, error) {
	iv, err := ParseInterval(date, start, end)
	if err != nil {
		return Slot{}, err
	}
	return Slot{Date: date, Venue: venue, Interval: iv}, nil
}

// Period is an overlap window formatted for display.
type Period struct {
	Date  string
	Start string
	End   string
}

// Conflict is the outcome of comparing two slots.
type Conflict struct {
	HasConflict   bool
	TimeConflict  bool
	VenueConflict bool
	Period        *Period
}

// Detect compares two slots. A conflict requires a time overlap; a shared
// venue alone only sets VenueConflict. Period carries a's date.
func Detect(a, b Slot) Conflict {
	var c Conflict
	if a.Interval.Overlaps(b.Interval) {
		w := a.Interval.Intersect(b.Interval)
		c.TimeConflict = true
		c.HasConflict = true
		c.Period = &Period{
			Date:  a.Date,
			Start: w.Start.Format(displayTime),
			End:   w.End.Format(displayTime),
		}
	}
	// Venue names compare exactly; no case folding or trimming.
	c.VenueConflict = a.Venue == b.Venue
	return c
}

// Describe renders the kind of conflict for a violation message. It returns
// an empty string when there is no time overlap.
func (c Conflict) Describe(venue string) string {
	if !c.TimeConflict || c.Period == nil {
		return ""
	}
	p := c.Period
	if c.VenueConflict {
		return fmt.Sprintf("Time and venue conflict: Event at same venue (%s) on %s between %s and %s",
			venue, p.Date, p.Start, p.End)
	}
	return fmt.Sprintf("Time conflict: Student cannot attend multiple events on %s between %s and %s",
		p.Date, p.Start, p.End)
}
