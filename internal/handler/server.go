// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, activity.go, budget.go, maps.go) but all share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tripmaster/trip-planner/backend/internal/domain"
	"github.com/tripmaster/trip-planner/backend/internal/geo"
	"github.com/tripmaster/trip-planner/backend/internal/itinerary"
	"github.com/tripmaster/trip-planner/backend/internal/service"
	"github.com/tripmaster/trip-planner/backend/spec"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context, page domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ActivityServicer defines the business operations the activity and
// itinerary handlers depend on.
type ActivityServicer interface {
	Create(ctx context.Context, act domain.Activity) (domain.Activity, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
	Itinerary(ctx context.Context, tripID uuid.UUID, sel itinerary.Selector) ([]domain.Activity, error)
	Update(ctx context.Context, act domain.Activity) (domain.Activity, error)
	Delete(ctx context.Context, tripID, activityID uuid.UUID) error
}

// BudgetServicer defines the aggregation operation the budget handler depends on.
type BudgetServicer interface {
	Summary(ctx context.Context, tripID uuid.UUID) (service.BudgetSummary, error)
}

// MapServicer defines the coordinate operations the maps handlers depend on.
type MapServicer interface {
	ResolveShortURL(ctx context.Context, url string) (service.Resolution, error)
	Locations(ctx context.Context, tripID uuid.UUID) (map[uuid.UUID]geo.Coords, error)
}

// Server holds the dependencies for all API endpoints.
type Server struct {
	trips      TripServicer
	activities ActivityServicer
	budgets    BudgetServicer
	maps       MapServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, activities ActivityServicer, budgets BudgetServicer, maps MapServicer) *Server {
	return &Server{trips: trips, activities: activities, budgets: budgets, maps: maps}
}

// Routes returns the chi router with every API route registered.
// Mount it at "/" in main; middleware belongs on the outer router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Get("/openapi.yaml", s.handleOpenAPI)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.handleListTrips)
		r.Post("/", s.handleCreateTrip)
		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.handleGetTrip)
			r.Put("/", s.handleUpdateTrip)
			r.Delete("/", s.handleDeleteTrip)

			r.Get("/activities", s.handleListActivities)
			r.Post("/activities", s.handleCreateActivity)
			r.Put("/activities/{activityID}", s.handleUpdateActivity)
			r.Delete("/activities/{activityID}", s.handleDeleteActivity)

			r.Get("/itinerary", s.handleItinerary)
			r.Get("/budget", s.handleBudget)
			r.Get("/locations", s.handleLocations)
		})
	})

	r.Post("/maps/resolve-url", s.handleResolveURL)

	return r
}

// handleOpenAPI serves the embedded OpenAPI document.
func (s *Server) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}

// pathUUID parses the named chi URL parameter as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}
