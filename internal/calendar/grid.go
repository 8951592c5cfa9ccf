// Package calendar computes the month grid shown next to the task list.
package calendar

import (
	"fmt"
	"time"

	"tempo/internal/dateutil"
)

// CellKind classifies a grid cell by the month it belongs to.
type CellKind int

const (
	// PrevMonth marks a leading filler cell from the previous month.
	PrevMonth CellKind = iota
	// CurrentMonth marks an interactive cell of the displayed month.
	CurrentMonth
	// NextMonth marks a trailing filler cell from the next month.
	NextMonth
)

// Cell is one slot of the month grid. Only CurrentMonth cells carry the
// Today/Selected flags and respond to selection.
type Cell struct {
	Day      int
	Kind     CellKind
	Today    bool
	Selected bool
}

// Grid lays out the given month as a fixed grid of 35 cells, growing to 42
// when the month does not fit in five weeks. Weeks start on Sunday.
func Grid(year int, month time.Month, today, selected time.Time) []Cell {
	first := int(time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Weekday())
	last := daysIn(year, month)
	prevLast := daysIn(year, month-1)

	total := first + last
	size := 35
	if total > 35 {
		size = 42
	}
	cells := make([]Cell, 0, size)

	for i := first - 1; i >= 0; i-- {
		cells = append(cells, Cell{Day: prevLast - i, Kind: PrevMonth})
	}
	for d := 1; d <= last; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.Local)
		cells = append(cells, Cell{
			Day:      d,
			Kind:     CurrentMonth,
			Today:    dateutil.SameDay(date, today),
			Selected: d == selected.Day(),
		})
	}
	for d := 1; len(cells) < size; d++ {
		cells = append(cells, Cell{Day: d, Kind: NextMonth})
	}
	return cells
}

// Title returns the month/year heading for the grid.
func Title(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month, year)
}

// daysIn returns the day count of the month; the zeroth day of the following
// month is its last day, which also handles the month-0 wrap to December.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}
