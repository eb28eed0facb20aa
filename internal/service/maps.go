package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tripmaster/trip-planner/backend/internal/domain"
	"github.com/tripmaster/trip-planner/backend/internal/geo"
	"github.com/tripmaster/trip-planner/backend/internal/repo"
)

// locator is the slice of geo.Locator that MapService depends on.
type locator interface {
	LocateAll(ctx context.Context, activities []domain.Activity) map[uuid.UUID]geo.Coords
}

// resolver is the slice of geo.Resolver that MapService depends on.
type resolver interface {
	Resolve(ctx context.Context, shortURL string) (string, error)
}

// Resolution is the outcome of expanding a shortened map URL.
// Found is false when the long URL carried no recognizable coordinates —
// a normal outcome, not an error.
type Resolution struct {
	FinalURL string
	Coords   geo.Coords
	Found    bool
}

// MapService exposes the coordinate fast path: short-URL expansion and batch
// location resolution for a trip's activities. Address-based geocoding stays
// with the frontend's map collaborator.
type MapService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
	locator    locator
	resolver   resolver
}

// NewMapService constructs a MapService backed by the provided repos and geo
// collaborators.
func NewMapService(trips repo.TripRepo, activities repo.ActivityRepo, loc locator, res resolver) *MapService {
	return &MapService{trips: trips, activities: activities, locator: loc, resolver: res}
}

// ResolveShortURL expands a shortened map link and runs the result through
// the coordinate pattern cascade.
// Returns domain.ErrValidation when url is empty or not a known short link.
func (s *MapService) ResolveShortURL(ctx context.Context, url string) (Resolution, error) {
	if url == "" {
		return Resolution{}, fmt.Errorf("%w: url is required", domain.ErrValidation)
	}
	if !geo.IsShortURL(url) {
		return Resolution{}, fmt.Errorf("%w: not a short url", domain.ErrValidation)
	}

	finalURL, err := s.resolver.Resolve(ctx, url)
	if err != nil {
		return Resolution{}, fmt.Errorf("service.MapService.ResolveShortURL: %w", err)
	}

	coords, found := geo.ExtractCoords(finalURL)
	return Resolution{FinalURL: finalURL, Coords: coords, Found: found}, nil
}

// Locations resolves coordinates for every locatable activity of a trip.
// Returns domain.ErrNotFound if the trip does not exist. Activities whose
// location cannot be resolved are absent from the result.
func (s *MapService) Locations(ctx context.Context, tripID uuid.UUID) (map[uuid.UUID]geo.Coords, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.MapService.Locations: %w", err)
	}
	acts, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.MapService.Locations: %w", err)
	}
	return s.locator.LocateAll(ctx, acts), nil
}
