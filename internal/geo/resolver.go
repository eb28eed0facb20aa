package geo

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Resolver expands shortened map URLs to their final redirect target.
// The zero value is not usable; construct with NewResolver.
type Resolver struct {
	client *http.Client
}

// NewResolver builds a Resolver with the given per-request timeout.
// A non-positive timeout falls back to 10 seconds.
func NewResolver(timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	// The default client follows up to 10 redirects, which is exactly the
	// behavior we need — the final URL is what carries the coordinates.
	return &Resolver{client: &http.Client{Timeout: timeout}}
}

// Resolve issues a HEAD request for shortURL, follows redirects, and returns
// the final URL. The response body is never read; only the landing URL
// matters. Network failures and timeouts surface as errors for the caller to
// treat as "no coordinates" — resolution is always best-effort.
func (r *Resolver) Resolve(ctx context.Context, shortURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, shortURL, nil)
	if err != nil {
		return "", fmt.Errorf("geo.Resolver.Resolve: build request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("geo.Resolver.Resolve: %w", err)
	}
	defer resp.Body.Close()

	return resp.Request.URL.String(), nil
}
