// Package service contains the business logic for the trip planner API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tripmaster/trip-planner/backend/internal/domain"
	"github.com/tripmaster/trip-planner/backend/internal/repo"
)

// TripService implements business logic for Trip operations.
// It holds the activities repo as well because updating a trip's date range
// re-clamps activity day indexes that would fall off the end.
type TripService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, activities repo.ActivityRepo) *TripService {
	return &TripService{trips: trips, activities: activities}
}

// Create validates and persists a new trip.
// Returns domain.ErrValidation if input violates business rules.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(&trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// List returns one page of trips plus the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context, page domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.trips.List(ctx, page)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// Update validates and persists changes to an existing trip.
// After a successful update, activities whose day index points past the new
// date range are reset to unassigned, so a shrinking range never leaves an
// activity on a day that no longer exists.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(&trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	if err := s.activities.UnassignBeyond(ctx, result.ID, result.Days()); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: reclamp: %w", err)
	}
	return result, nil
}

// Delete removes a trip by ID. The database cascades the delete to the
// trip's activities in the same statement, so no orphans are possible.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// validateTrip enforces business rules common to Create and Update, and
// normalizes the participant list in place.
//   - Destination must be non-empty (whitespace-only is rejected).
//   - Both dates are required and start must not be after end.
//   - Participant names are trimmed; empties and duplicates are dropped.
func validateTrip(trip *domain.Trip) error {
	if strings.TrimSpace(trip.Destination) == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if trip.StartDate.IsZero() || trip.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", domain.ErrValidation)
	}
	if trip.EndDate.Before(trip.StartDate) {
		return fmt.Errorf("%w: endDate must not be before startDate", domain.ErrValidation)
	}
	trip.Participants = normalizeNames(trip.Participants)
	return nil
}

// normalizeNames trims each name and drops empties and duplicates,
// preserving first-seen order.
func normalizeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
