package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/tripmaster/trip-planner/backend/internal/domain"
)

// TripRequest is the JSON body for creating or updating a trip.
// Dates travel as "2006-01-02" strings (openapi date format).
type TripRequest struct {
	Destination  string             `json:"destination"`
	StartDate    openapi_types.Date `json:"startDate"`
	EndDate      openapi_types.Date `json:"endDate"`
	Participants []string           `json:"participants"`
	CoverImage   string             `json:"coverImage"`
	Announcement string             `json:"announcement"`
}

// TripResponse is the JSON representation of a trip.
type TripResponse struct {
	ID           uuid.UUID          `json:"id"`
	Destination  string             `json:"destination"`
	StartDate    openapi_types.Date `json:"startDate"`
	EndDate      openapi_types.Date `json:"endDate"`
	Days         int                `json:"days"`
	Participants []string           `json:"participants"`
	CoverImage   string             `json:"coverImage,omitempty"`
	Announcement string             `json:"announcement,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// TripListResponse is the paginated body of GET /trips.
type TripListResponse struct {
	Data       []TripResponse `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

// Pagination echoes the effective paging parameters plus the total row count.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// handleCreateTrip handles POST /trips.
func (s *Server) handleCreateTrip(w http.ResponseWriter, r *http.Request) {
	var req TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	created, err := s.trips.Create(r.Context(), requestToTrip(req))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeValidation(w, err)
			return
		}
		writeInternal(w)
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// handleListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) handleListTrips(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))

	trips, total, err := s.trips.List(r.Context(), params)
	if err != nil {
		writeInternal(w)
		return
	}

	data := make([]TripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, TripListResponse{
		Data:       data,
		Pagination: Pagination{Page: params.Page, Limit: params.Limit, Total: int(total)},
	})
}

// handleGetTrip handles GET /trips/{tripID}.
func (s *Server) handleGetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "tripID")
	if err != nil {
		writeBadRequest(w, "invalid trip id")
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		writeInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// handleUpdateTrip handles PUT /trips/{tripID}.
func (s *Server) handleUpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "tripID")
	if err != nil {
		writeBadRequest(w, "invalid trip id")
		return
	}

	var req TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	trip := requestToTrip(req)
	trip.ID = id

	updated, err := s.trips.Update(r.Context(), trip)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeNotFound(w, "trip not found")
		case errors.Is(err, domain.ErrValidation):
			writeValidation(w, err)
		default:
			writeInternal(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// handleDeleteTrip handles DELETE /trips/{tripID}.
// Deleting a trip removes its activities in the same database statement.
func (s *Server) handleDeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "tripID")
	if err != nil {
		writeBadRequest(w, "invalid trip id")
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		writeInternal(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// requestToTrip converts a TripRequest body into a domain.Trip.
func requestToTrip(req TripRequest) domain.Trip {
	return domain.Trip{
		Destination:  req.Destination,
		StartDate:    req.StartDate.Time,
		EndDate:      req.EndDate.Time,
		Participants: req.Participants,
		CoverImage:   req.CoverImage,
		Announcement: req.Announcement,
	}
}

// tripToResponse converts a domain.Trip into its wire representation.
func tripToResponse(t domain.Trip) TripResponse {
	return TripResponse{
		ID:           t.ID,
		Destination:  t.Destination,
		StartDate:    openapi_types.Date{Time: t.StartDate},
		EndDate:      openapi_types.Date{Time: t.EndDate},
		Days:         t.Days(),
		Participants: t.Participants,
		CoverImage:   t.CoverImage,
		Announcement: t.Announcement,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// queryInt parses an optional integer query parameter, returning nil when the
// parameter is absent or not a number.
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
