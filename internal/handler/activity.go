package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/tripmaster/trip-planner/backend/internal/domain"
	"github.com/tripmaster/trip-planner/backend/internal/itinerary"
)

// ActivityRequest is the JSON body for creating or updating an activity.
// DayIndex is a pointer so an omitted field defaults to -1 (unassigned)
// rather than day zero.
type ActivityRequest struct {
	Title         string   `json:"title"`
	Time          string   `json:"time"`
	Location      string   `json:"location"`
	Cost          float64  `json:"cost"`
	Currency      string   `json:"currency"`
	Type          string   `json:"type"`
	Notes         string   `json:"notes"`
	SplitBy       []string `json:"splitBy"`
	DayIndex      *int     `json:"dayIndex"`
	IsExpenseOnly bool     `json:"isExpenseOnly"`
}

// ActivityResponse is the JSON representation of an activity.
type ActivityResponse struct {
	ID            uuid.UUID `json:"id"`
	TripID        uuid.UUID `json:"tripId"`
	Title         string    `json:"title"`
	Time          string    `json:"time,omitempty"`
	Location      string    `json:"location,omitempty"`
	Cost          float64   `json:"cost"`
	Currency      string    `json:"currency"`
	Type          string    `json:"type"`
	Notes         string    `json:"notes,omitempty"`
	SplitBy       []string  `json:"splitBy"`
	DayIndex      int       `json:"dayIndex"`
	IsExpenseOnly bool      `json:"isExpenseOnly"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// handleCreateActivity handles POST /trips/{tripID}/activities.
func (s *Server) handleCreateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeBadRequest(w, "invalid trip id")
		return
	}

	var req ActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	act := requestToActivity(req)
	act.TripID = tripID

	created, err := s.activities.Create(r.Context(), act)
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

	writeJSON(w, http.StatusCreated, activityToResponse(created))
}

// handleListActivities handles GET /trips/{tripID}/activities.
// Returns every activity of the trip, expense-only lines included, ordered by
// day index then time.
func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeBadRequest(w, "invalid trip id")
		return
	}

	acts, err := s.activities.ListByTripID(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		writeInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, activitiesToResponse(acts))
}

// handleItinerary handles GET /trips/{tripID}/itinerary.
// The ?day= parameter selects the view: -2 (default) for all days, -1 for
// unassigned activities, or a zero-based day offset. Expense-only entries are
// never included.
func (s *Server) handleItinerary(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeBadRequest(w, "invalid trip id")
		return
	}

	sel := itinerary.SelectorAll
	if raw := r.URL.Query().Get("day"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < int(itinerary.SelectorAll) {
			writeBadRequest(w, "day must be -2, -1, or a day offset")
			return
		}
		sel = itinerary.Selector(n)
	}

	acts, err := s.activities.Itinerary(r.Context(), tripID, sel)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		writeInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, activitiesToResponse(acts))
}

// handleUpdateActivity handles PUT /trips/{tripID}/activities/{activityID}.
func (s *Server) handleUpdateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeBadRequest(w, "invalid trip id")
		return
	}
	activityID, err := pathUUID(r, "activityID")
	if err != nil {
		writeBadRequest(w, "invalid activity id")
		return
	}

	var req ActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	act := requestToActivity(req)
	act.ID = activityID
	act.TripID = tripID

	updated, err := s.activities.Update(r.Context(), act)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeNotFound(w, "activity not found")
		case errors.Is(err, domain.ErrValidation):
			writeValidation(w, err)
		default:
			writeInternal(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, activityToResponse(updated))
}

// handleDeleteActivity handles DELETE /trips/{tripID}/activities/{activityID}.
func (s *Server) handleDeleteActivity(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeBadRequest(w, "invalid trip id")
		return
	}
	activityID, err := pathUUID(r, "activityID")
	if err != nil {
		writeBadRequest(w, "invalid activity id")
		return
	}

	if err := s.activities.Delete(r.Context(), tripID, activityID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "activity not found")
			return
		}
		writeInternal(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// requestToActivity converts an ActivityRequest body into a domain.Activity.
// TripID (and ID on update) are filled in by the caller from the path.
func requestToActivity(req ActivityRequest) domain.Activity {
	dayIndex := domain.DayUnassigned
	if req.DayIndex != nil {
		dayIndex = *req.DayIndex
	}
	return domain.Activity{
		Title:         req.Title,
		Time:          req.Time,
		Location:      req.Location,
		Cost:          req.Cost,
		Currency:      domain.Currency(req.Currency),
		Type:          domain.ActivityType(req.Type),
		Notes:         req.Notes,
		SplitBy:       req.SplitBy,
		DayIndex:      dayIndex,
		IsExpenseOnly: req.IsExpenseOnly,
	}
}

// activityToResponse converts a domain.Activity into its wire representation.
func activityToResponse(a domain.Activity) ActivityResponse {
	splitBy := a.SplitBy
	if splitBy == nil {
		splitBy = []string{}
	}
	return ActivityResponse{
		ID:            a.ID,
		TripID:        a.TripID,
		Title:         a.Title,
		Time:          a.Time,
		Location:      a.Location,
		Cost:          a.Cost,
		Currency:      string(a.Currency),
		Type:          string(a.Type),
		Notes:         a.Notes,
		SplitBy:       splitBy,
		DayIndex:      a.DayIndex,
		IsExpenseOnly: a.IsExpenseOnly,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func activitiesToResponse(acts []domain.Activity) []ActivityResponse {
	out := make([]ActivityResponse, len(acts))
	for i, a := range acts {
		out[i] = activityToResponse(a)
	}
	return out
}
