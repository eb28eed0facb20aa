// Package domain contains the core data types for the trip planner backend.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler, budget, itinerary).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a single travel plan with a fixed date range.
// A trip is the top-level aggregate; activities belong to a trip.
type Trip struct {
	ID           uuid.UUID
	Destination  string
	StartDate    time.Time
	EndDate      time.Time // inclusive; never before StartDate once validated
	Participants []string
	CoverImage   string // opaque encoded image, possibly empty
	Announcement string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Days returns the number of calendar days in the trip's inclusive date range.
// A trip whose start and end fall on the same day lasts one day.
func (t Trip) Days() int {
	start := t.StartDate.Truncate(24 * time.Hour)
	end := t.EndDate.Truncate(24 * time.Hour)
	return int(end.Sub(start).Hours()/24) + 1
}

// HasParticipant reports whether name is one of the trip's participants.
func (t Trip) HasParticipant(name string) bool {
	for _, p := range t.Participants {
		if p == name {
			return true
		}
	}
	return false
}
