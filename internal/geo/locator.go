package geo

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tripmaster/trip-planner/backend/internal/domain"
)

// urlResolver is the slice of Resolver that Locator depends on.
// Defined here so tests can substitute a fake without real network calls.
type urlResolver interface {
	Resolve(ctx context.Context, shortURL string) (string, error)
}

// Locator resolves the locations of a batch of activities to coordinates.
// Each activity is an independent unit of work: a slow or failed resolution
// for one never blocks or fails the others.
type Locator struct {
	resolver urlResolver
	// maxInFlight bounds concurrent short-URL resolutions so a trip full of
	// short links does not open unbounded connections.
	maxInFlight int
}

// NewLocator builds a Locator on top of the given resolver.
func NewLocator(resolver urlResolver) *Locator {
	return &Locator{resolver: resolver, maxInFlight: 4}
}

// LocateAll extracts coordinates for every activity with a location.
// Plain map URLs are parsed in place; shortened URLs are expanded over the
// network first. Activities whose location yields nothing are simply absent
// from the result — a miss is a normal outcome, not an error.
func (l *Locator) LocateAll(ctx context.Context, activities []domain.Activity) map[uuid.UUID]Coords {
	var (
		mu    sync.Mutex
		found = make(map[uuid.UUID]Coords)
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.maxInFlight)

	for _, act := range activities {
		if act.Location == "" {
			continue
		}
		act := act
		g.Go(func() error {
			coords, ok := l.locate(ctx, act.Location)
			if !ok {
				return nil
			}
			mu.Lock()
			found[act.ID] = coords
			mu.Unlock()
			return nil
		})
	}

	// Goroutines only ever return nil; Wait is for completion, not errors.
	_ = g.Wait()
	return found
}

// locate runs one location through the short-URL fast path and the pattern
// cascade.
func (l *Locator) locate(ctx context.Context, location string) (Coords, bool) {
	target := location
	if IsShortURL(location) {
		resolved, err := l.resolver.Resolve(ctx, location)
		if err != nil {
			return Coords{}, false
		}
		target = resolved
	}
	return ExtractCoords(target)
}
