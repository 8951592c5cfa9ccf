package task

import (
	"math"
	"time"

	"tempo/internal/dateutil"
)

// BadgeClass picks the visual weight of a priority badge.
type BadgeClass int

const (
	BadgeNeutral BadgeClass = iota
	BadgePositive
	BadgeStrong
	BadgeWarning
)

// Badge is the priority label shown on a task card.
type Badge struct {
	Label string
	Class BadgeClass
}

// PriorityBadge classifies a task against today's date, both taken at local
// midnight. Far-future tasks (more than a week out) carry the strong badge.
func PriorityBadge(t Task, today time.Time) Badge {
	if t.Completed {
		return Badge{Label: "Completed", Class: BadgeNeutral}
	}
	target, err := dateutil.ParseKey(t.Date)
	if err != nil {
		// An unparsable date falls through every comparison below.
		return Badge{Label: "Planned", Class: BadgeWarning}
	}
	diff := diffDays(target, dateutil.StartOfDay(today))
	switch {
	case diff == 0:
		return Badge{Label: "Today", Class: BadgePositive}
	case diff > 7:
		return Badge{Label: "Long-range", Class: BadgeStrong}
	case diff < 0 || diff <= 3:
		return Badge{Label: "High priority", Class: BadgeWarning}
	default:
		return Badge{Label: "Planned", Class: BadgeWarning}
	}
}

const dayMillis = 24 * 60 * 60 * 1000

func diffDays(target, today time.Time) int {
	return int(math.Ceil(float64(target.Sub(today).Milliseconds()) / dayMillis))
}
