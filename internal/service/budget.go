package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tripmaster/trip-planner/backend/internal/budget"
	"github.com/tripmaster/trip-planner/backend/internal/domain"
	"github.com/tripmaster/trip-planner/backend/internal/repo"
)

// BudgetSummary is the full spending picture of one trip: grand totals,
// category breakdown, and equal-split shares, each bucketed per currency.
// It is derived data — recomputed from the current activity set on every read.
type BudgetSummary struct {
	Participants   []string
	Totals         map[domain.Currency]float64
	Categories     map[domain.Currency]budget.CategoryTotals
	PerParticipant map[string]map[domain.Currency]float64
}

// BudgetService assembles budget summaries from stored trips and activities.
type BudgetService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewBudgetService constructs a BudgetService backed by the provided repos.
func NewBudgetService(trips repo.TripRepo, activities repo.ActivityRepo) *BudgetService {
	return &BudgetService{trips: trips, activities: activities}
}

// Summary computes the BudgetSummary for one trip.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *BudgetService) Summary(ctx context.Context, tripID uuid.UUID) (BudgetSummary, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return BudgetSummary{}, fmt.Errorf("service.BudgetService.Summary: %w", err)
	}
	acts, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return BudgetSummary{}, fmt.Errorf("service.BudgetService.Summary: %w", err)
	}

	return BudgetSummary{
		Participants:   trip.Participants,
		Totals:         budget.Totals(acts),
		Categories:     budget.ByCategory(acts),
		PerParticipant: budget.Split(acts, trip.Participants),
	}, nil
}
