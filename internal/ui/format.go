package ui

import (
	"fmt"
	"time"

	"github.com/jlebon/git-bstatus/internal/models"
)

const (
	secondsPerMinute = 60
	minutesPerHour   = 60
	hoursPerDay      = 24
	daysPerWeek      = 7
	daysPerMonth     = 30 // close enough for a coarse label
	monthsPerYear    = 12
)

var timeNow = time.Now

// RelativeTime renders an epoch timestamp as a coarse age like "3 mins"
// or "2 years". Timestamps at or past the current time render as "now".
func RelativeTime(timestamp int64) string {
	now := timeNow().Unix()
	if timestamp >= now {
		return "now"
	}

	secs := now - timestamp
	if secs < secondsPerMinute {
		return plural(secs, "sec")
	}

	mins := secs / secondsPerMinute
	if mins < minutesPerHour {
		return plural(mins, "min")
	}

	hours := mins / minutesPerHour
	if hours < hoursPerDay {
		return plural(hours, "hour")
	}

	days := hours / hoursPerDay
	if days < daysPerWeek {
		return plural(days, "day")
	}
	if days < daysPerMonth {
		return plural(days/daysPerWeek, "week")
	}

	months := days / daysPerMonth
	if months < monthsPerYear {
		return plural(months, "month")
	}

	return plural(months/monthsPerYear, "year")
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func countDigits(n int) int {
	if n == 0 {
		return 1
	}
	digits := 0
	for n > 0 {
		n /= 10
		digits++
	}
	return digits
}

// widths holds the column widths for one rendered table.
type widths struct {
	name  int
	age   int
	ahead int // includes the leading sign
}

// columnWidths computes column widths over exactly the rows being
// printed. ages must be the rendered age labels, one per branch.
func columnWidths(branches []models.Branch, ages []string) widths {
	var w widths
	maxAhead := 0
	for i, b := range branches {
		if len(b.Name) > w.name {
			w.name = len(b.Name)
		}
		if len(ages[i]) > w.age {
			w.age = len(ages[i])
		}
		if b.Ahead > maxAhead {
			maxAhead = b.Ahead
		}
	}
	w.ahead = countDigits(maxAhead) + 1
	return w
}
