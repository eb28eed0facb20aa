package domain

import (
	"time"

	"github.com/google/uuid"
)

// DayUnassigned is the DayIndex value for activities not placed on any day.
const DayUnassigned = -1

// ActivityType categorizes an activity for the budget breakdown.
// The set is fixed; values outside it are tolerated at the data layer and
// fall back to a default label in display logic.
type ActivityType string

const (
	TypeSightseeing ActivityType = "sightseeing"
	TypeFood        ActivityType = "food"
	TypeTransport   ActivityType = "transport"
	TypeShopping    ActivityType = "shopping"
	TypeOther       ActivityType = "other"
)

// ActivityTypes lists the recognized categories in display order.
var ActivityTypes = []ActivityType{TypeSightseeing, TypeFood, TypeTransport, TypeShopping, TypeOther}

// Known reports whether t is one of the five recognized categories.
func (t ActivityType) Known() bool {
	switch t {
	case TypeSightseeing, TypeFood, TypeTransport, TypeShopping, TypeOther:
		return true
	}
	return false
}

// Activity is a single itinerary entry or expense line belonging to one trip.
// An activity with IsExpenseOnly set is a pure budget line and never appears
// in the itinerary timeline; it still counts in all money aggregations.
type Activity struct {
	ID       uuid.UUID
	TripID   uuid.UUID
	Title    string
	Time     string // optional "HH:MM", lexically sortable; empty means no time
	Location string // free text or a map URL
	Cost     float64
	Currency Currency
	Type     ActivityType
	Notes    string
	// SplitBy names the participants responsible for this cost. An empty set
	// means the cost is not attributed to anyone — it is NOT shorthand for
	// "split among all participants".
	SplitBy       []string
	DayIndex      int // DayUnassigned, or a zero-based offset into the trip's date range
	IsExpenseOnly bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
