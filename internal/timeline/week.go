// Package timeline computes the Monday-to-Sunday week window shown by the
// dashboard calendar and maps tasks into visual spans within it.
package timeline

import (
	"time"

	"github.com/tomgiova97/freelance-dashboard/internal/timerange"
)

const day = 24 * time.Hour

// Week is a Monday-to-Sunday window. Start is Monday 00:00, End is Sunday
// end-of-day.
type Week struct {
	Start time.Time
	End   time.Time
}

// WeekOf returns the week containing the reference date: the most recent
// Monday on or before it through the following Sunday. A Sunday reference
// belongs to the week that started six days earlier.
func WeekOf(ref time.Time) Week {
	midnight := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	// time.Weekday counts Sunday as 0; shift so Monday is 0.
	offset := (int(midnight.Weekday()) + 6) % 7
	start := midnight.AddDate(0, 0, -offset)
	return Week{
		Start: start,
		End:   start.AddDate(0, 0, 7).Add(-time.Nanosecond),
	}
}

// Range returns the week as an inclusive filter range.
func (w Week) Range() timerange.Range {
	return timerange.Range{Start: w.Start, End: w.End}
}

// Days returns the seven day-start timestamps of the week, Monday first.
func (w Week) Days() []time.Time {
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = w.Start.AddDate(0, 0, i)
	}
	return days
}

// Span is a task's visual placement in the week grid, at whole-day
// granularity. StartColumn is the 1-based day offset from the week start;
// Days is the inclusive day count of the clamped interval.
type Span struct {
	StartColumn int
	Days        int
}

// SpanOf clamps the interval [start, end] to the week boundaries and converts
// it to a grid span. The second return value is false when the interval does
// not overlap the week at all. Partial days truncate down.
func (w Week) SpanOf(start, end time.Time) (Span, bool) {
	if !w.Range().Overlaps(start, end) {
		return Span{}, false
	}

	visualStart := start
	if visualStart.Before(w.Start) {
		visualStart = w.Start
	}
	visualEnd := end
	if visualEnd.After(w.End) {
		visualEnd = w.End
	}

	return Span{
		StartColumn: int(visualStart.Sub(w.Start)/day) + 1,
		Days:        int(visualEnd.Sub(visualStart)/day) + 1,
	}, true
}
