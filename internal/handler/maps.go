package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/google/uuid"

	"github.com/tripmaster/trip-planner/backend/internal/domain"
	"github.com/tripmaster/trip-planner/backend/internal/geo"
)

// ResolveURLRequest is the JSON body of POST /maps/resolve-url.
type ResolveURLRequest struct {
	URL string `json:"url"`
}

// ResolveURLResponse reports the outcome of expanding a shortened map URL.
// Found is false when the expanded URL carried no recognizable coordinates —
// the caller should fall back to address geocoding.
type ResolveURLResponse struct {
	Found    bool        `json:"found"`
	Coords   *geo.Coords `json:"coords,omitempty"`
	FinalURL string      `json:"finalUrl"`
}

// LocationResponse is one resolved activity location.
type LocationResponse struct {
	ActivityID uuid.UUID `json:"activityId"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
}

// handleResolveURL handles POST /maps/resolve-url.
// Only known short-link domains are accepted; full map URLs carry their
// coordinates inline and never need a server round-trip.
func (s *Server) handleResolveURL(w http.ResponseWriter, r *http.Request) {
	var req ResolveURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	res, err := s.maps.ResolveShortURL(r.Context(), req.URL)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeValidation(w, err)
			return
		}
		writeInternal(w)
		return
	}

	resp := ResolveURLResponse{Found: res.Found, FinalURL: res.FinalURL}
	if res.Found {
		coords := res.Coords
		resp.Coords = &coords
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleLocations handles GET /trips/{tripID}/locations.
// It resolves coordinates for every locatable activity of the trip; entries
// exist only for activities whose location yielded a coordinate pair.
func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeBadRequest(w, "invalid trip id")
		return
	}

	located, err := s.maps.Locations(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		writeInternal(w)
		return
	}

	out := make([]LocationResponse, 0, len(located))
	for id, coords := range located {
		out = append(out, LocationResponse{ActivityID: id, Lat: coords.Lat, Lng: coords.Lng})
	}
	// Map iteration order is random; keep the payload deterministic.
	sort.Slice(out, func(i, j int) bool {
		return out[i].ActivityID.String() < out[j].ActivityID.String()
	})

	writeJSON(w, http.StatusOK, map[string][]LocationResponse{"locations": out})
}
