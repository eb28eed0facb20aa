// Package repo contains all database access logic for the trip planner API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tripmaster/trip-planner/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// List returns one page of trips ordered by created_at descending, plus
	// the total trip count for pagination metadata.
	List(ctx context.Context, page domain.PaginationParams) ([]domain.Trip, int64, error)

	// Update overwrites the mutable fields of an existing trip and returns the
	// updated record. Returns domain.ErrNotFound if no trip with that ID exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip by ID. The activities table carries an
	// ON DELETE CASCADE foreign key, so the trip's activities go with it in
	// the same statement. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, destination, start_date, end_date, participants, cover_image, announcement, created_at, updated_at`

func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (destination, start_date, end_date, participants, cover_image, announcement)
		VALUES (@destination, @start_date, @end_date, @participants, @cover_image, @announcement)
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"destination":  trip.Destination,
		"start_date":   trip.StartDate,
		"end_date":     trip.EndDate,
		"participants": trip.Participants,
		"cover_image":  trip.CoverImage,
		"announcement": trip.Announcement,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns trips newest-first, matching the original product's dashboard
// ordering.
func (r *pgTripRepo) List(ctx context.Context, page domain.PaginationParams) ([]domain.Trip, int64, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		ORDER BY created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": page.Limit, "offset": page.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM trips`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.List: count: %w", err)
	}

	return trips, total, nil
}

func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET destination  = @destination,
		    start_date   = @start_date,
		    end_date     = @end_date,
		    participants = @participants,
		    cover_image  = @cover_image,
		    announcement = @announcement,
		    updated_at   = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"id":           trip.ID,
		"destination":  trip.Destination,
		"start_date":   trip.StartDate,
		"end_date":     trip.EndDate,
		"participants": trip.Participants,
		"cover_image":  trip.CoverImage,
		"announcement": trip.Announcement,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scan helpers to
// be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the UUID and date conversions.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t     domain.Trip
		id    pgtype.UUID
		start pgtype.Date
		end   pgtype.Date
	)

	err := s.Scan(&id, &t.Destination, &start, &end, &t.Participants,
		&t.CoverImage, &t.Announcement, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.StartDate = start.Time
	t.EndDate = end.Time
	if t.Participants == nil {
		t.Participants = []string{}
	}

	return t, nil
}
