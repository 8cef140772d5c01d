// utils/dates.go
package utils

import (
	"fmt"
	"time"
)

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return BeginningOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// Window is an inclusive [From, To] instant range. Every aggregation query
// is scoped by exactly one window.
type Window struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t lies inside the window, boundaries included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && !t.After(w.To)
}

// Label renders the window for export filenames, e.g. "20260801-20260831".
// Single-day windows collapse to one date.
func (w Window) Label() string {
	from := w.From.Format("20060102")
	to := w.To.Format("20060102")
	if from == to {
		return from
	}
	return from + "-" + to
}

// ParseWindow reads from/to query values (YYYY-MM-DD) into an inclusive
// window covering whole days. Empty values default to today.
func ParseWindow(fromStr, toStr string) (Window, error) {
	now := time.Now()
	from := BeginningOfDay(now)
	to := EndOfDay(now)

	if fromStr != "" {
		t, err := time.ParseInLocation("2006-01-02", fromStr, now.Location())
		if err != nil {
			return Window{}, fmt.Errorf("invalid from date: %s", fromStr)
		}
		from = BeginningOfDay(t)
	}
	if toStr != "" {
		t, err := time.ParseInLocation("2006-01-02", toStr, now.Location())
		if err != nil {
			return Window{}, fmt.Errorf("invalid to date: %s", toStr)
		}
		to = EndOfDay(t)
	}
	if to.Before(from) {
		return Window{}, fmt.Errorf("window end precedes start")
	}
	return Window{From: from, To: to}, nil
}
