// Package route extracts search geometry from a serialized directions result.
package route

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/waypointlabs/semantic-maps-api/internal/dto"
)

// ErrShape reports a directions object missing the expected routes/legs nesting.
var ErrShape = errors.New("route object missing routes or legs")

// AnchorKind names which point of the route a search is biased toward.
type AnchorKind string

const (
	AnchorStart       AnchorKind = "start"
	AnchorDestination AnchorKind = "destination"
	AnchorMidpoint    AnchorKind = "midpoint"
)

var (
	destinationKeywords = []string{"near destination", "at destination", "destination area", "end of trip"}
	startKeywords       = []string{"near start", "at start", "beginning", "start of trip", "departure"}
)

// Geometry holds the endpoints of the first leg of a route.
type Geometry struct {
	Start dto.LatLng
	End   dto.LatLng
}

// Midpoint returns the arithmetic mean of the leg endpoints. No great-circle
// correction; the bias point only needs to be roughly on the route.
func (g Geometry) Midpoint() dto.LatLng {
	return dto.LatLng{
		Lat: (g.Start.Lat + g.End.Lat) / 2,
		Lng: (g.Start.Lng + g.End.Lng) / 2,
	}
}

// Extract pulls start and end coordinates out of routes[0].legs[0]. Anything
// missing along that path is a shape error attributable to the client.
func Extract(raw []byte) (Geometry, error) {
	leg := gjson.GetBytes(raw, "routes.0.legs.0")
	if !leg.Exists() {
		return Geometry{}, ErrShape
	}

	start := leg.Get("start_location")
	end := leg.Get("end_location")
	if !start.Get("lat").Exists() || !start.Get("lng").Exists() ||
		!end.Get("lat").Exists() || !end.Get("lng").Exists() {
		return Geometry{}, ErrShape
	}

	return Geometry{
		Start: dto.LatLng{Lat: start.Get("lat").Float(), Lng: start.Get("lng").Float()},
		End:   dto.LatLng{Lat: end.Get("lat").Float(), Lng: end.Get("lng").Float()},
	}, nil
}

// Anchor picks the bias point for a places search from the query wording.
// Destination keywords win over start keywords; everything else searches
// around the midpoint.
func Anchor(query string, g Geometry) (dto.LatLng, AnchorKind) {
	lower := strings.ToLower(query)

	for _, kw := range destinationKeywords {
		if strings.Contains(lower, kw) {
			return g.End, AnchorDestination
		}
	}
	for _, kw := range startKeywords {
		if strings.Contains(lower, kw) {
			return g.Start, AnchorStart
		}
	}
	return g.Midpoint(), AnchorMidpoint
}
