// Package itinerary produces the ordered day-by-day view of a trip's
// activities. Like the budget package it is pure: every call recomputes the
// view from the activity snapshot it is given.
package itinerary

import (
	"sort"

	"github.com/tripmaster/trip-planner/backend/internal/domain"
)

// Selector chooses which day of the itinerary to show.
// Non-negative values select a specific zero-based day.
type Selector int

const (
	// SelectorAll shows every itinerary activity across all days.
	SelectorAll Selector = -2
	// SelectorUnassigned shows activities not placed on any day.
	SelectorUnassigned Selector = -1
)

// View filters and orders activities for display.
//
// Expense-only entries are always excluded — the itinerary timeline never
// shows pure budget lines. The remaining activities are filtered by sel and
// sorted by day index, then by time. Activities with a time sort before
// those without one; ties keep their input order (the sort is stable), which
// callers rely on for activities sharing a day and lacking times.
func View(activities []domain.Activity, sel Selector) []domain.Activity {
	out := make([]domain.Activity, 0, len(activities))
	for _, act := range activities {
		if act.IsExpenseOnly {
			continue
		}
		switch {
		case sel == SelectorAll:
			out = append(out, act)
		case sel == SelectorUnassigned && act.DayIndex == domain.DayUnassigned:
			out = append(out, act)
		case sel >= 0 && act.DayIndex == int(sel):
			out = append(out, act)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.DayIndex != b.DayIndex {
			return a.DayIndex < b.DayIndex
		}
		if a.Time != "" && b.Time != "" {
			return a.Time < b.Time
		}
		// Timed entries come before untimed ones; two untimed entries are
		// left in input order.
		return a.Time != "" && b.Time == ""
	})

	return out
}
