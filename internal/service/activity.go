package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/tripmaster/trip-planner/backend/internal/domain"
	"github.com/tripmaster/trip-planner/backend/internal/itinerary"
	"github.com/tripmaster/trip-planner/backend/internal/repo"
)

// ActivityService implements business logic for Activity operations.
// It holds the trips repo as well because creating an activity requires
// verifying the parent trip exists.
type ActivityService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided repos.
func NewActivityService(trips repo.TripRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{trips: trips, activities: activities}
}

// Create validates the activity, verifies the parent trip exists, then persists.
// Returns domain.ErrValidation if input violates business rules.
// Returns domain.ErrNotFound if the parent trip does not exist.
func (s *ActivityService) Create(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	if _, err := s.trips.GetByID(ctx, act.TripID); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	if err := validateActivity(&act); err != nil {
		return domain.Activity{}, err
	}
	result, err := s.activities.Create(ctx, act)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single activity by ID, scoped to the given tripID.
func (s *ActivityService) GetByID(ctx context.Context, tripID, activityID uuid.UUID) (domain.Activity, error) {
	result, err := s.activities.GetByID(ctx, tripID, activityID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.GetByID: %w", err)
	}
	return result, nil
}

// ListByTripID returns all activities for a trip, expense-only lines included.
// Returns domain.ErrNotFound if the trip does not exist.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ActivityService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTripID: %w", err)
	}
	acts, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTripID: %w", err)
	}
	if acts == nil {
		acts = []domain.Activity{}
	}
	return acts, nil
}

// Itinerary returns the ordered timeline view for the given day selector:
// expense-only entries removed, day filter applied, sorted by day and time.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *ActivityService) Itinerary(ctx context.Context, tripID uuid.UUID, sel itinerary.Selector) ([]domain.Activity, error) {
	acts, err := s.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.Itinerary: %w", err)
	}
	return itinerary.View(acts, sel), nil
}

// Update validates and persists changes to an existing activity.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// activity does not exist under the given trip.
func (s *ActivityService) Update(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	if err := validateActivity(&act); err != nil {
		return domain.Activity{}, err
	}
	result, err := s.activities.Update(ctx, act)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an activity by ID, scoped to the given tripID.
// Returns domain.ErrNotFound if the activity does not exist under that trip.
func (s *ActivityService) Delete(ctx context.Context, tripID, activityID uuid.UUID) error {
	if err := s.activities.Delete(ctx, tripID, activityID); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	return nil
}

// timeOfDay matches the "HH:MM" wall-clock format activities carry.
var timeOfDay = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// validateActivity enforces business rules common to Create and Update, and
// normalizes defaults in place.
//   - Title must be non-empty (whitespace-only titles are rejected).
//   - Time, when set, must be "HH:MM".
//   - Cost must not be negative.
//   - DayIndex must be -1 (unassigned) or a non-negative day offset.
//   - Empty currency and type fall back to their defaults; unrecognized
//     values are tolerated, matching the original data layer.
func validateActivity(act *domain.Activity) error {
	if strings.TrimSpace(act.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if act.Time != "" && !timeOfDay.MatchString(act.Time) {
		return fmt.Errorf("%w: time must be HH:MM", domain.ErrValidation)
	}
	if act.Cost < 0 {
		return fmt.Errorf("%w: cost must not be negative", domain.ErrValidation)
	}
	if act.DayIndex < domain.DayUnassigned {
		return fmt.Errorf("%w: dayIndex must be -1 or a day offset", domain.ErrValidation)
	}
	act.Currency = act.Currency.OrDefault()
	if act.Type == "" {
		act.Type = domain.TypeSightseeing
	}
	act.SplitBy = normalizeNames(act.SplitBy)
	return nil
}
