package task

import (
	"time"

	"tempo/internal/dateutil"
)

// MonthStats counts completed and pending tasks dated in the given month.
// Only the month index is compared, not the year; tasks from the same month
// of another year are counted into the displayed month's totals.
func MonthStats(tasks []Task, month time.Month) (completed, pending int) {
	for _, t := range tasks {
		d, err := dateutil.ParseKey(t.Date)
		if err != nil || d.Month() != month {
			continue
		}
		if t.Completed {
			completed++
		} else {
			pending++
		}
	}
	return completed, pending
}
