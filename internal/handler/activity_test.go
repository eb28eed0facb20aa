package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripmaster/trip-planner/backend/internal/domain"
	"github.com/tripmaster/trip-planner/backend/internal/handler"
	"github.com/tripmaster/trip-planner/backend/internal/itinerary"
)

// mockActivityServicer is a test double for handler.ActivityServicer.
type mockActivityServicer struct {
	create       func(ctx context.Context, act domain.Activity) (domain.Activity, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
	itinerary    func(ctx context.Context, tripID uuid.UUID, sel itinerary.Selector) ([]domain.Activity, error)
	update       func(ctx context.Context, act domain.Activity) (domain.Activity, error)
	delete       func(ctx context.Context, tripID, activityID uuid.UUID) error
}

func (m *mockActivityServicer) Create(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	return m.create(ctx, act)
}
func (m *mockActivityServicer) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockActivityServicer) Itinerary(ctx context.Context, tripID uuid.UUID, sel itinerary.Selector) ([]domain.Activity, error) {
	return m.itinerary(ctx, tripID, sel)
}
func (m *mockActivityServicer) Update(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	return m.update(ctx, act)
}
func (m *mockActivityServicer) Delete(ctx context.Context, tripID, activityID uuid.UUID) error {
	return m.delete(ctx, tripID, activityID)
}

// compile-time check: mockActivityServicer must satisfy handler.ActivityServicer.
var _ handler.ActivityServicer = (*mockActivityServicer)(nil)

func activityFixture(tripID uuid.UUID) domain.Activity {
	return domain.Activity{
		ID:        uuid.New(),
		TripID:    tripID,
		Title:     "Senso-ji Temple",
		Time:      "09:30",
		Cost:      500,
		Currency:  domain.JPY,
		Type:      domain.TypeSightseeing,
		SplitBy:   []string{"Alice", "Bob"},
		DayIndex:  0,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

// ---- POST /trips/{tripID}/activities ---------------------------------------

func TestCreateActivity_201(t *testing.T) {
	tripID := uuid.New()
	fixture := activityFixture(tripID)
	svc := &mockActivityServicer{
		create: func(_ context.Context, act domain.Activity) (domain.Activity, error) {
			assert.Equal(t, tripID, act.TripID)
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"title":    "Senso-ji Temple",
		"time":     "09:30",
		"cost":     500,
		"currency": "JPY",
		"type":     "sightseeing",
		"splitBy":  []string{"Alice", "Bob"},
		"dayIndex": 0,
	})

	req := httptest.NewRequest(http.MethodPost, "/trips/"+tripID.String()+"/activities", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTestHandler(nil, svc, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp handler.ActivityResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.ID, resp.ID)
	assert.Equal(t, tripID, resp.TripID)
	assert.Equal(t, "JPY", resp.Currency)
	assert.Equal(t, 0, resp.DayIndex)
}

// An omitted dayIndex means unassigned, not day zero.
func TestCreateActivity_201_DefaultDayIndex(t *testing.T) {
	tripID := uuid.New()
	var got domain.Activity
	svc := &mockActivityServicer{
		create: func(_ context.Context, act domain.Activity) (domain.Activity, error) {
			got = act
			return act, nil
		},
	}

	body := jsonBody(t, map[string]any{"title": "Dinner"})

	req := httptest.NewRequest(http.MethodPost, "/trips/"+tripID.String()+"/activities", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTestHandler(nil, svc, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, domain.DayUnassigned, got.DayIndex)
}

func TestCreateActivity_404_TripNotFound(t *testing.T) {
	svc := &mockActivityServicer{
		create: func(_ context.Context, _ domain.Activity) (domain.Activity, error) {
			return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", domain.ErrNotFound)
		},
	}

	body := jsonBody(t, map[string]any{"title": "Dinner"})

	req := httptest.NewRequest(http.MethodPost, "/trips/"+uuid.NewString()+"/activities", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTestHandler(nil, svc, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateActivity_400_ValidationError(t *testing.T) {
	svc := &mockActivityServicer{
		create: func(_ context.Context, _ domain.Activity) (domain.Activity, error) {
			return domain.Activity{}, fmt.Errorf("%w: title is required", domain.ErrValidation)
		},
	}

	body := jsonBody(t, map[string]any{"cost": 100})

	req := httptest.NewRequest(http.MethodPost, "/trips/"+uuid.NewString()+"/activities", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTestHandler(nil, svc, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", decodeError(t, rec))
}

// ---- GET /trips/{tripID}/activities ----------------------------------------

func TestListActivities_200(t *testing.T) {
	tripID := uuid.New()
	svc := &mockActivityServicer{
		listByTripID: func(_ context.Context, id uuid.UUID) ([]domain.Activity, error) {
			assert.Equal(t, tripID, id)
			return []domain.Activity{activityFixture(tripID)}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+tripID.String()+"/activities", nil)
	rec := httptest.NewRecorder()

	newTestHandler(nil, svc, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []handler.ActivityResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp, 1)
}

func TestListActivities_404_TripNotFound(t *testing.T) {
	svc := &mockActivityServicer{
		listByTripID: func(_ context.Context, _ uuid.UUID) ([]domain.Activity, error) {
			return nil, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.NewString()+"/activities", nil)
	rec := httptest.NewRecorder()

	newTestHandler(nil, svc, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- GET /trips/{tripID}/itinerary -----------------------------------------

func TestItinerary_200_DefaultsToAllDays(t *testing.T) {
	tripID := uuid.New()
	var gotSel itinerary.Selector
	svc := &mockActivityServicer{
		itinerary: func(_ context.Context, _ uuid.UUID, sel itinerary.Selector) ([]domain.Activity, error) {
			gotSel = sel
			return []domain.Activity{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+tripID.String()+"/itinerary", nil)
	rec := httptest.NewRecorder()

	newTestHandler(nil, svc, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, itinerary.SelectorAll, gotSel)
}

func TestItinerary_200_DayParam(t *testing.T) {
	tripID := uuid.New()
	var gotSel itinerary.Selector
	svc := &mockActivityServicer{
		itinerary: func(_ context.Context, _ uuid.UUID, sel itinerary.Selector) ([]domain.Activity, error) {
			gotSel = sel
			return []domain.Activity{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+tripID.String()+"/itinerary?day=2", nil)
	rec := httptest.NewRecorder()

	newTestHandler(nil, svc, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, itinerary.Selector(2), gotSel)
}

func TestItinerary_400_BadDayParam(t *testing.T) {
	for _, day := range []string{"-3", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.NewString()+"/itinerary?day="+day, nil)
		rec := httptest.NewRecorder()

		newTestHandler(nil, &mockActivityServicer{}, nil, nil).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "day=%s", day)
	}
}

// ---- PUT /trips/{tripID}/activities/{activityID} ---------------------------

func TestUpdateActivity_200(t *testing.T) {
	tripID := uuid.New()
	fixture := activityFixture(tripID)
	svc := &mockActivityServicer{
		update: func(_ context.Context, act domain.Activity) (domain.Activity, error) {
			assert.Equal(t, fixture.ID, act.ID)
			assert.Equal(t, tripID, act.TripID)
			fixture.Title = act.Title
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{"title": "Renamed", "dayIndex": 1})

	req := httptest.NewRequest(http.MethodPut, "/trips/"+tripID.String()+"/activities/"+fixture.ID.String(), body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTestHandler(nil, svc, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handler.ActivityResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Renamed", resp.Title)
}

func TestUpdateActivity_404(t *testing.T) {
	svc := &mockActivityServicer{
		update: func(_ context.Context, _ domain.Activity) (domain.Activity, error) {
			return domain.Activity{}, domain.ErrNotFound
		},
	}

	body := jsonBody(t, map[string]any{"title": "Renamed"})

	req := httptest.NewRequest(http.MethodPut, "/trips/"+uuid.NewString()+"/activities/"+uuid.NewString(), body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTestHandler(nil, svc, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateActivity_400_BadActivityUUID(t *testing.T) {
	body := jsonBody(t, map[string]any{"title": "Renamed"})

	req := httptest.NewRequest(http.MethodPut, "/trips/"+uuid.NewString()+"/activities/not-a-uuid", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTestHandler(nil, &mockActivityServicer{}, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- DELETE /trips/{tripID}/activities/{activityID} ------------------------

func TestDeleteActivity_204(t *testing.T) {
	tripID, activityID := uuid.New(), uuid.New()
	svc := &mockActivityServicer{
		delete: func(_ context.Context, gotTrip, gotAct uuid.UUID) error {
			assert.Equal(t, tripID, gotTrip)
			assert.Equal(t, activityID, gotAct)
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/trips/"+tripID.String()+"/activities/"+activityID.String(), nil)
	rec := httptest.NewRecorder()

	newTestHandler(nil, svc, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteActivity_404(t *testing.T) {
	svc := &mockActivityServicer{
		delete: func(_ context.Context, _, _ uuid.UUID) error { return domain.ErrNotFound },
	}

	req := httptest.NewRequest(http.MethodDelete, "/trips/"+uuid.NewString()+"/activities/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	newTestHandler(nil, svc, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
