// Package calendar computes the month-grid view-model for the event
// calendar. Everything here is a pure function of its inputs: the grid
// is re-derivable from (year, month) alone and the groupings from the
// event list alone.
package calendar

import (
	"time"

	"campuscal/internal/domain"
)

// Cell is one slot in a month grid. The zero value is an empty padding
// cell used to align the first and last week.
type Cell struct {
	// Date is the calendar day this cell represents; zero for padding.
	Date domain.Date
}

// Empty reports whether the cell is a padding slot.
func (c Cell) Empty() bool {
	return c.Date.IsZero()
}

// MonthGrid returns the cells of a month view, in reading order. The
// result's length is always a multiple of 7: leading empty cells align
// day 1 with its weekday (Sunday-first), then the days of the month in
// ascending order, then trailing empty cells complete the last week.
func MonthGrid(year int, month time.Month) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	startWeekday := int(first.Weekday())

	grid := make([]Cell, 0, startWeekday+daysInMonth+6)
	for i := 0; i < startWeekday; i++ {
		grid = append(grid, Cell{})
	}
	for day := 1; day <= daysInMonth; day++ {
		grid = append(grid, Cell{Date: domain.NewDate(year, month, day)})
	}
	for len(grid)%7 != 0 {
		grid = append(grid, Cell{})
	}
	return grid
}

// GroupByDate groups events by their date key (YYYY-MM-DD). Within a
// key, events keep the input list's order, so a newest-first input
// yields newest-first day lists.
func GroupByDate(events []*domain.Event) map[string][]*domain.Event {
	byDate := make(map[string][]*domain.Event)
	for _, e := range events {
		key := e.Date.String()
		byDate[key] = append(byDate[key], e)
	}
	return byDate
}

// MaxDayMarkers caps the category indicator marks rendered in a day cell.
const MaxDayMarkers = 3

// CategoryBucket resolves an event's visual bucket. The three known
// categories map to themselves; anything else (including the empty
// string) lands in the club-styled bucket. The fallback is deliberate
// and total: no category string can escape the mapping.
func CategoryBucket(e *domain.Event) string {
	switch e.EventType {
	case domain.EventTypeAcademic, domain.EventTypeSports, domain.EventTypeClub:
		return e.EventType
	default:
		return domain.EventTypeClub
	}
}

// DaySummary describes the indicator marks for a single day cell.
type DaySummary struct {
	// Markers holds at most MaxDayMarkers category buckets, one per
	// event, in the events' order.
	Markers []string
	// Overflow is how many additional events exist beyond the markers.
	Overflow int
}

// DayMarkers computes the indicator summary for the events of one day.
func DayMarkers(events []*domain.Event) DaySummary {
	var s DaySummary
	for i, e := range events {
		if i == MaxDayMarkers {
			s.Overflow = len(events) - MaxDayMarkers
			break
		}
		s.Markers = append(s.Markers, CategoryBucket(e))
	}
	return s
}
