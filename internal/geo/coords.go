// Package geo extracts map coordinates from location strings.
//
// ExtractCoords is the pure fast path: it pattern-matches coordinates out of
// map-service URLs without any network I/O. Resolver handles shortened map
// links, which carry no coordinates themselves and must first be expanded by
// following their HTTP redirect. Locator batches resolution across a trip's
// activities.
package geo

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// Coords is a WGS84 latitude/longitude pair.
type Coords struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// coordPatterns are tried in priority order; the first match wins.
// Each pattern captures exactly two signed decimal numbers (lat, lng).
var coordPatterns = []*regexp.Regexp{
	// @lat,lng — the marker position embedded in most map URLs.
	regexp.MustCompile(`@(-?\d+\.?\d*),(-?\d+\.?\d*)`),
	// place/<name>/@lat,lng path segment.
	regexp.MustCompile(`place/[^/]+/@(-?\d+\.?\d*),(-?\d+\.?\d*)`),
	// q=lat,lng query parameter.
	regexp.MustCompile(`[?&]q=(-?\d+\.?\d*),(-?\d+\.?\d*)`),
	// ll=lat,lng query parameter.
	regexp.MustCompile(`[?&]ll=(-?\d+\.?\d*),(-?\d+\.?\d*)`),
	// /dir/…/lat,lng directions path segment.
	regexp.MustCompile(`/dir/[^/]*/(-?\d+\.?\d*),(-?\d+\.?\d*)`),
	// !3d<lat>!4d<lng> pair inside an encoded data blob.
	regexp.MustCompile(`!3d(-?\d+\.?\d*)!4d(-?\d+\.?\d*)`),
}

// ExtractCoords pulls a coordinate pair out of a location string, typically a
// full map-service URL. It returns false when no pattern matches — a normal
// outcome for plain addresses, never an error. Shortened URLs carry no
// coordinates; expand them with Resolver first.
func ExtractCoords(s string) (Coords, bool) {
	if s == "" {
		return Coords{}, false
	}
	for _, p := range coordPatterns {
		m := p.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		lat, errLat := strconv.ParseFloat(m[1], 64)
		lng, errLng := strconv.ParseFloat(m[2], 64)
		if errLat != nil || errLng != nil {
			continue
		}
		return Coords{Lat: lat, Lng: lng}, true
	}
	return Coords{}, false
}

// IsShortURL reports whether s points at a known map link-shortener domain.
// Short links redirect to a full map URL and must be resolved before
// ExtractCoords can find anything.
func IsShortURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		// Bare strings like "maps.app.goo.gl/abc" parse without a host.
		return strings.Contains(s, "goo.gl/")
	}
	host := strings.ToLower(u.Host)
	return host == "goo.gl" || strings.HasSuffix(host, ".goo.gl")
}
