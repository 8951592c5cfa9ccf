package task

import (
	"fmt"
	"strings"
	"time"

	"tempo/internal/dateutil"
)

// Countdown is the remaining-time readout for an incomplete task. Urgent
// flips on when less than three hours remain on the due day.
type Countdown struct {
	Text    string
	Urgent  bool
	Expired bool
}

// CountdownFor computes the time left until the end (23:59:59.999) of the
// day named by dateKey. Callers skip tasks whose key does not parse.
func CountdownFor(dateKey string, now time.Time) (Countdown, error) {
	target, err := dateutil.ParseKey(dateKey)
	if err != nil {
		return Countdown{}, err
	}
	diff := dateutil.EndOfDay(target).Sub(now)
	if diff <= 0 {
		return Countdown{Text: "EXPIRED", Urgent: true, Expired: true}, nil
	}

	ms := diff.Milliseconds()
	days := ms / dayMillis
	hours := (ms % dayMillis) / (60 * 60 * 1000)
	minutes := (ms % (60 * 60 * 1000)) / (60 * 1000)
	seconds := (ms % (60 * 1000)) / 1000

	var b strings.Builder
	if days > 0 {
		fmt.Fprintf(&b, "%d Days ", days)
	}
	fmt.Fprintf(&b, "%d Hours %d Minutes %d Seconds", hours, minutes, seconds)

	return Countdown{
		Text:   b.String(),
		Urgent: days == 0 && hours < 3,
	}, nil
}
