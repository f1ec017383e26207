package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/waypointlabs/semantic-maps-api/internal/dto"
	"github.com/waypointlabs/semantic-maps-api/internal/gemini"
	"github.com/waypointlabs/semantic-maps-api/internal/maps"
	"github.com/waypointlabs/semantic-maps-api/internal/service/locus"
)

// CurrentLocationSentinel is returned when the model decides a phrase refers
// to wherever the user currently is; the front end substitutes device GPS.
const CurrentLocationSentinel = "Current Location"

// ResolverService rewrites vague origins and destinations into concrete
// addresses using geocoding, biased searches and model-synthesized queries.
// Resolution is best-effort: every internal failure leaves the parse unchanged.
type ResolverService struct {
	gen            gemini.Generator
	maps           maps.API
	contextRadiusM int
	searchRadiusM  int
	broadRadiusM   int
}

// NewResolverService wires the resolver with its search radii in meters.
func NewResolverService(gen gemini.Generator, mapsAPI maps.API, contextRadiusM, searchRadiusM, broadRadiusM int) *ResolverService {
	if contextRadiusM <= 0 {
		contextRadiusM = 5000
	}
	if searchRadiusM <= 0 {
		searchRadiusM = 10000
	}
	if broadRadiusM <= 0 {
		broadRadiusM = 15000
	}
	return &ResolverService{
		gen:            gen,
		maps:           mapsAPI,
		contextRadiusM: contextRadiusM,
		searchRadiusM:  searchRadiusM,
		broadRadiusM:   broadRadiusM,
	}
}

// ResolveCommand applies the resolution strategies to a parsed voice command
// and records which ones fired. Strategies run in a fixed order and later ones
// may override earlier results; a run where nothing fired returns the parse
// unchanged.
func (s *ResolverService) ResolveCommand(ctx context.Context, parsed dto.ParsedCommand, originalCommand string) dto.ResolvedCommand {
	resolvedOrigin := parsed.Origin
	resolvedDestination := parsed.Destination
	var methods []string

	if parsed.Origin != "" && (locus.IsVague(parsed.Origin) || locus.ShouldResolve(parsed.Origin)) {
		resolvedOrigin = s.ResolveLocation(ctx, parsed.Origin, "origin", "")
		if resolvedOrigin != parsed.Origin {
			methods = append(methods, "origin_resolution")
		}
	}

	if parsed.Destination != "" && (locus.IsVague(parsed.Destination) || locus.ShouldResolve(parsed.Destination)) {
		resolvedDestination = s.ResolveLocation(ctx, parsed.Destination, "destination", resolvedOrigin)
		if resolvedDestination != parsed.Destination {
			methods = append(methods, "destination_resolution")
		}
	}

	if parsed.Destination != "" && parsed.VagueContext != "" && !locus.IsVague(parsed.Destination) {
		if dest, ok := s.nearbyContextSearch(ctx, parsed.VagueContext, resolvedOrigin); ok {
			resolvedDestination = dest
			methods = append(methods, "nearby_search")
		}
	}

	if parsed.VagueContext != "" && !locus.IsVague(parsed.Destination) {
		if dest, ok := s.broadContextSearch(ctx, originalCommand, parsed.VagueContext); ok {
			resolvedDestination = dest
			methods = append(methods, "broad_search")
		}
	}

	if len(methods) == 0 {
		return dto.ResolvedCommand{
			Origin:        parsed.Origin,
			Destination:   parsed.Destination,
			SemanticQuery: parsed.SemanticQuery,
			IsVague:       parsed.IsVague,
			VagueContext:  parsed.VagueContext,
		}
	}

	resolved := dto.ResolvedCommand{
		Origin:            resolvedOrigin,
		Destination:       resolvedDestination,
		SemanticQuery:     parsed.SemanticQuery,
		Resolved:          true,
		ResolutionMethods: methods,
	}
	if resolvedOrigin != parsed.Origin {
		resolved.OriginalOrigin = parsed.Origin
	}
	if resolvedDestination != parsed.Destination {
		resolved.OriginalDestination = parsed.Destination
	}
	return resolved
}

// nearbyContextSearch looks for places matching the vague context near the
// origin, skipping the first name match as the place the user is already at.
func (s *ResolverService) nearbyContextSearch(ctx context.Context, vagueContext, origin string) (string, bool) {
	if origin == "" {
		return "", false
	}

	geocoded, err := s.maps.Geocode(ctx, origin)
	if err != nil || len(geocoded) == 0 {
		if err != nil {
			log.Printf("geocoding origin %q failed: %v", origin, err)
		}
		return "", false
	}
	originLocation := geocoded[0].Geometry.Location

	results, err := s.maps.TextSearch(ctx, maps.TextSearchRequest{
		Query:    fmt.Sprintf("%s near %s", vagueContext, origin),
		Location: &originLocation,
		RadiusM:  s.contextRadiusM,
	})
	if err != nil {
		log.Printf("nearby context search failed: %v", err)
		return "", false
	}

	contextLower := strings.ToLower(vagueContext)
	var seenCurrent bool
	var others []maps.PlaceResult
	for _, place := range results {
		if strings.Contains(strings.ToLower(place.Name), contextLower) {
			if !seenCurrent {
				seenCurrent = true
			} else {
				others = append(others, place)
			}
		}
	}
	if len(others) == 0 {
		return "", false
	}

	best := bestByRating(others)
	return addressOrName(best), true
}

// broadContextSearch asks the model for a widened search phrase and runs an
// unbiased search with it.
func (s *ResolverService) broadContextSearch(ctx context.Context, originalCommand, vagueContext string) (string, bool) {
	query, err := gemini.BroadSearchQuery(ctx, s.gen, originalCommand, vagueContext)
	if err != nil {
		log.Printf("broad query synthesis failed: %v", err)
		return "", false
	}

	results, err := s.maps.TextSearch(ctx, maps.TextSearchRequest{
		Query:   query.SearchQuery,
		RadiusM: s.searchRadiusM,
	})
	if err != nil {
		log.Printf("broad context search failed: %v", err)
		return "", false
	}
	if len(results) == 0 {
		return "", false
	}

	return addressOrName(bestByRating(results)), true
}

// ResolveLocation rewrites one vague location phrase into a concrete address.
// Direct geocoding wins outright; otherwise the model proposes a search query
// that is run biased toward the reference location when one is known, with a
// two-word wider retry before giving up and returning the input unchanged.
func (s *ResolverService) ResolveLocation(ctx context.Context, location, kind, reference string) string {
	if geocoded, err := s.maps.Geocode(ctx, location); err == nil && len(geocoded) > 0 {
		resolved := geocoded[0].FormattedAddress
		log.Printf("direct geocoding resolved %q to %q", location, resolved)
		return resolved
	}

	query, err := gemini.ResolveLocationQuery(ctx, s.gen, location, kind, reference)
	if err != nil {
		log.Printf("resolving %q failed: %v", location, err)
		return location
	}

	if query.LocationType == "current_location" {
		return CurrentLocationSentinel
	}

	req := maps.TextSearchRequest{Query: query.SearchQuery, RadiusM: s.searchRadiusM}
	if reference != "" {
		if geocoded, err := s.maps.Geocode(ctx, reference); err == nil && len(geocoded) > 0 {
			req.Location = &geocoded[0].Geometry.Location
			req.RadiusM = s.contextRadiusM
		} else if err != nil {
			log.Printf("geocoding reference %q failed: %v", reference, err)
		}
	}

	results, err := s.maps.TextSearch(ctx, req)
	if err != nil {
		log.Printf("resolving %q failed: %v", location, err)
		return location
	}
	if len(results) > 0 {
		resolved := addressOrName(bestByRating(results))
		log.Printf("places search resolved %q to %q using query %q", location, resolved, query.SearchQuery)
		return resolved
	}

	// Retry with just the leading business name at a wider radius.
	words := strings.Fields(query.SearchQuery)
	if len(words) >= 2 {
		businessName := strings.Join(words[:2], " ")
		broader, err := s.maps.TextSearch(ctx, maps.TextSearchRequest{
			Query:   businessName,
			RadiusM: s.broadRadiusM,
		})
		if err != nil {
			log.Printf("broader search for %q failed: %v", businessName, err)
			return location
		}
		if len(broader) > 0 {
			resolved := addressOrName(bestByRating(broader))
			log.Printf("broader search resolved %q to %q", location, resolved)
			return resolved
		}
	}

	return location
}

// bestByRating returns the first result with the highest rating. Callers must
// pass a non-empty slice.
func bestByRating(results []maps.PlaceResult) maps.PlaceResult {
	best := results[0]
	for _, candidate := range results[1:] {
		if candidate.RatingValue() > best.RatingValue() {
			best = candidate
		}
	}
	return best
}

func addressOrName(place maps.PlaceResult) string {
	if place.FormattedAddress != "" {
		return place.FormattedAddress
	}
	return place.Name
}
