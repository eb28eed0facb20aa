package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tripmaster/trip-planner/backend/internal/domain"
)

// ActivityRepo defines the persistence operations for Activities.
// All write and single-read operations are scoped by tripID to enforce ownership.
type ActivityRepo interface {
	// Create inserts a new activity and returns the persisted record.
	Create(ctx context.Context, act domain.Activity) (domain.Activity, error)

	// GetByID retrieves a single activity by its UUID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no activity with that ID exists under that trip.
	GetByID(ctx context.Context, tripID, activityID uuid.UUID) (domain.Activity, error)

	// ListByTripID returns all activities for a trip ordered by day_index
	// ascending, then time ascending.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)

	// Update overwrites the mutable fields of an activity, scoped to the given
	// tripID. Returns domain.ErrNotFound if no activity with that ID exists
	// under that trip.
	Update(ctx context.Context, act domain.Activity) (domain.Activity, error)

	// Delete removes an activity by ID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no activity with that ID exists under that trip.
	Delete(ctx context.Context, tripID, activityID uuid.UUID) error

	// UnassignBeyond resets day_index to -1 for every activity of the trip
	// whose day_index is days or greater. Called when a trip's date range
	// shrinks so no activity points past the last day.
	UnassignBeyond(ctx context.Context, tripID uuid.UUID, days int) error
}

// pgActivityRepo is the Postgres implementation of ActivityRepo.
type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

const activityColumns = `id, trip_id, title, time_of_day, location, cost, currency, type, notes, split_by, day_index, is_expense_only, created_at, updated_at`

func (r *pgActivityRepo) Create(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	const q = `
		INSERT INTO activities
			(trip_id, title, time_of_day, location, cost, currency, type, notes, split_by, day_index, is_expense_only)
		VALUES
			(@trip_id, @title, @time_of_day, @location, @cost, @currency, @type, @notes, @split_by, @day_index, @is_expense_only)
		RETURNING ` + activityColumns

	row := r.db.QueryRow(ctx, q, activityArgs(act))
	result, err := scanActivity(row)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) GetByID(ctx context.Context, tripID, activityID uuid.UUID) (domain.Activity, error) {
	const q = `SELECT ` + activityColumns + ` FROM activities WHERE id = @id AND trip_id = @trip_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": activityID, "trip_id": tripID})
	result, err := scanActivity(row)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByTripID orders by day index and time, the same default ordering the
// original API applied. Untimed activities (empty string) sort first within a
// day here; the itinerary package applies the full display ordering.
func (r *pgActivityRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	const q = `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE trip_id = @trip_id
		ORDER BY day_index ASC, time_of_day ASC, created_at ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var acts []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: scan: %w", err)
		}
		acts = append(acts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: rows: %w", err)
	}

	return acts, nil
}

func (r *pgActivityRepo) Update(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	const q = `
		UPDATE activities
		SET title           = @title,
		    time_of_day     = @time_of_day,
		    location        = @location,
		    cost            = @cost,
		    currency        = @currency,
		    type            = @type,
		    notes           = @notes,
		    split_by        = @split_by,
		    day_index       = @day_index,
		    is_expense_only = @is_expense_only,
		    updated_at      = now()
		WHERE id = @id AND trip_id = @trip_id
		RETURNING ` + activityColumns

	args := activityArgs(act)
	args["id"] = act.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanActivity(row)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) Delete(ctx context.Context, tripID, activityID uuid.UUID) error {
	const q = `DELETE FROM activities WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": activityID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgActivityRepo) UnassignBeyond(ctx context.Context, tripID uuid.UUID, days int) error {
	const q = `
		UPDATE activities
		SET day_index = -1, updated_at = now()
		WHERE trip_id = @trip_id AND day_index >= @days`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"trip_id": tripID, "days": days}); err != nil {
		return fmt.Errorf("repo.ActivityRepo.UnassignBeyond: %w", err)
	}
	return nil
}

// activityArgs builds the NamedArgs shared by Create and Update.
func activityArgs(act domain.Activity) pgx.NamedArgs {
	return pgx.NamedArgs{
		"trip_id":         act.TripID,
		"title":           act.Title,
		"time_of_day":     act.Time,
		"location":        act.Location,
		"cost":            act.Cost,
		"currency":        string(act.Currency.OrDefault()),
		"type":            string(act.Type),
		"notes":           act.Notes,
		"split_by":        act.SplitBy,
		"day_index":       act.DayIndex,
		"is_expense_only": act.IsExpenseOnly,
	}
}

// scanActivity maps a single database row into a domain.Activity.
func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a        domain.Activity
		id       pgtype.UUID
		tripID   pgtype.UUID
		currency string
		actType  string
	)

	err := s.Scan(&id, &tripID, &a.Title, &a.Time, &a.Location, &a.Cost,
		&currency, &actType, &a.Notes, &a.SplitBy, &a.DayIndex,
		&a.IsExpenseOnly, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Activity{}, domain.ErrNotFound
		}
		return domain.Activity{}, err
	}

	a.ID = uuid.UUID(id.Bytes)
	a.TripID = uuid.UUID(tripID.Bytes)
	a.Currency = domain.Currency(currency)
	a.Type = domain.ActivityType(actType)
	if a.SplitBy == nil {
		a.SplitBy = []string{}
	}

	return a, nil
}
