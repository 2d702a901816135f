// Package timerange implements the inclusive date-range filters used by the
// listing endpoints and the week timeline.
package timerange

import (
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

// Range is an inclusive [Start, End] interval.
type Range struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the record interval [start, end] shares at least
// one point in time with the range. Boundaries are inclusive on both ends.
func (r Range) Overlaps(start, end time.Time) bool {
	return !start.After(r.End) && !end.Before(r.Start)
}

// Contains reports whether a single point in time lies within the range,
// boundaries included.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// FromQuery builds a Range from the startDate/endDate query parameters.
// Filtering only activates when both parameters are present; otherwise a nil
// Range is returned and no filtering applies. Values are parsed at calendar-day
// granularity (YYYY-MM-DD), with RFC 3339 accepted as a fallback.
func FromQuery(start, end string) (*Range, error) {
	if start == "" || end == "" {
		return nil, nil
	}

	s, err := parseDate(start)
	if err != nil {
		return nil, fmt.Errorf("invalid startDate %q", start)
	}
	e, err := parseDate(end)
	if err != nil {
		return nil, fmt.Errorf("invalid endDate %q", end)
	}

	return &Range{Start: s, End: e}, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dayLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
