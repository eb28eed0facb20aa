// Package budget derives spending summaries from a trip's activities.
// All functions are pure: they take an in-memory snapshot of activities and
// return fresh maps, hold no state, and are safe to recompute at any time.
//
// Amounts are always bucketed by currency and buckets are never combined —
// no currency conversion happens anywhere in this package.
package budget

import "github.com/tripmaster/trip-planner/backend/internal/domain"

// CategoryTotals holds per-category subtotals for one currency bucket.
// The five fields mirror the recognized activity types; costs carrying an
// unrecognized type are not represented here even though they still count
// toward the currency's grand total in Totals. That asymmetry is intentional
// and kept for compatibility with the original product behavior.
type CategoryTotals struct {
	Sightseeing float64
	Food        float64
	Transport   float64
	Shopping    float64
	Other       float64
}

// add accumulates amount into the field for t. Unrecognized types are dropped.
func (c *CategoryTotals) add(t domain.ActivityType, amount float64) {
	switch t {
	case domain.TypeSightseeing:
		c.Sightseeing += amount
	case domain.TypeFood:
		c.Food += amount
	case domain.TypeTransport:
		c.Transport += amount
	case domain.TypeShopping:
		c.Shopping += amount
	case domain.TypeOther:
		c.Other += amount
	}
}

// Amount returns the subtotal for the given category, or 0 for an
// unrecognized type.
func (c CategoryTotals) Amount(t domain.ActivityType) float64 {
	switch t {
	case domain.TypeSightseeing:
		return c.Sightseeing
	case domain.TypeFood:
		return c.Food
	case domain.TypeTransport:
		return c.Transport
	case domain.TypeShopping:
		return c.Shopping
	case domain.TypeOther:
		return c.Other
	}
	return 0
}

// Sum returns the total across the five recognized categories.
func (c CategoryTotals) Sum() float64 {
	return c.Sightseeing + c.Food + c.Transport + c.Shopping + c.Other
}

// Share returns the percentage (0-100) that category t contributes to the
// five-category sum. When the sum is 0 every share is 0, never NaN.
func (c CategoryTotals) Share(t domain.ActivityType) float64 {
	sum := c.Sum()
	if sum == 0 {
		return 0
	}
	return c.Amount(t) / sum * 100
}

// Totals computes the grand total spend per currency across all activities.
// Zero-cost activities are skipped entirely — their currency is not even
// registered as a bucket. Expense-only and itinerary activities count alike;
// money aggregation is independent of the IsExpenseOnly flag.
func Totals(activities []domain.Activity) map[domain.Currency]float64 {
	totals := make(map[domain.Currency]float64)
	for _, act := range activities {
		if act.Cost <= 0 {
			continue
		}
		totals[act.Currency.OrDefault()] += act.Cost
	}
	return totals
}

// ByCategory computes, per currency, the subtotal of each recognized category.
// An activity with cost > 0 always creates its currency's bucket; if its type
// is unrecognized the amount lands in no category, so the bucket's Sum can be
// less than the currency's grand total from Totals.
func ByCategory(activities []domain.Activity) map[domain.Currency]CategoryTotals {
	buckets := make(map[domain.Currency]CategoryTotals)
	for _, act := range activities {
		if act.Cost <= 0 {
			continue
		}
		cur := act.Currency.OrDefault()
		bucket := buckets[cur]
		bucket.add(act.Type, act.Cost)
		buckets[cur] = bucket
	}
	return buckets
}

// Split computes the amount each participant owes per currency under the
// equal-split policy: an activity's cost divides evenly across its SplitBy
// names (real-valued division).
//
// An empty SplitBy means the cost is attributed to no one — the residual
// between Totals and the sum of everyone's shares. Names in SplitBy that are
// no longer trip participants are silently dropped; their share is never
// reassigned to the remaining members.
//
// Participants with no attributed cost in a currency have no entry for that
// currency; a participant with no attributed cost at all still appears with
// an empty inner map so callers can render every member.
func Split(activities []domain.Activity, participants []string) map[string]map[domain.Currency]float64 {
	known := make(map[string]bool, len(participants))
	owed := make(map[string]map[domain.Currency]float64, len(participants))
	for _, name := range participants {
		known[name] = true
		owed[name] = make(map[domain.Currency]float64)
	}

	for _, act := range activities {
		if act.Cost <= 0 || len(act.SplitBy) == 0 {
			continue
		}
		share := act.Cost / float64(len(act.SplitBy))
		cur := act.Currency.OrDefault()
		for _, name := range act.SplitBy {
			if !known[name] {
				continue // stale name from a removed participant
			}
			owed[name][cur] += share
		}
	}
	return owed
}
