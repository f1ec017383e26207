package service

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/nyaruka/phonenumbers"

	"github.com/waypointlabs/semantic-maps-api/internal/dto"
	"github.com/waypointlabs/semantic-maps-api/internal/gemini"
	"github.com/waypointlabs/semantic-maps-api/internal/maps"
	"github.com/waypointlabs/semantic-maps-api/internal/route"
)

const (
	maxCandidates      = 10
	defaultPhoneRegion = "US"
)

// UpstreamSearchError marks a failed places-search call so the handler can
// report it as a bad gateway rather than an internal error.
type UpstreamSearchError struct {
	Err error
}

func (e *UpstreamSearchError) Error() string {
	return fmt.Sprintf("Google Places API error: %v", e.Err)
}

func (e *UpstreamSearchError) Unwrap() error { return e.Err }

// PlacesService runs the search-and-enrich pipeline for route queries.
type PlacesService struct {
	gen           gemini.Generator
	maps          maps.API
	searchRadiusM int
}

// NewPlacesService wires the pipeline against its two upstream capabilities.
func NewPlacesService(gen gemini.Generator, mapsAPI maps.API, searchRadiusM int) *PlacesService {
	if searchRadiusM <= 0 {
		searchRadiusM = 10000
	}
	return &PlacesService{gen: gen, maps: mapsAPI, searchRadiusM: searchRadiusM}
}

// FindAlongRoute resolves a natural-language query against a driving route:
// derive search terms, pick a bias point, search, enrich the top candidates
// and attach model recommendations.
func (s *PlacesService) FindAlongRoute(ctx context.Context, query string, rawRoute []byte) (*dto.RoutePlacesResponse, error) {
	terms, err := gemini.ExtractSearchTerms(ctx, s.gen, query)
	if err != nil {
		return nil, err
	}

	geometry, err := route.Extract(rawRoute)
	if err != nil {
		return nil, err
	}
	anchor, anchorKind := route.Anchor(query, geometry)

	results, err := s.maps.TextSearch(ctx, maps.TextSearchRequest{
		Query:    terms.SearchQuery,
		Location: &anchor,
		RadiusM:  s.searchRadiusM,
		Type:     terms.PlaceType,
	})
	if err != nil {
		return nil, &UpstreamSearchError{Err: err}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RatingValue() > results[j].RatingValue()
	})
	if len(results) > maxCandidates {
		results = results[:maxCandidates]
	}

	candidates := make([]dto.Place, 0, len(results))
	for _, result := range results {
		candidates = append(candidates, s.enrich(ctx, result))
	}

	recommendations := gemini.RecommendPlaces(ctx, s.gen, candidates, query)

	recommended := make([]dto.Place, 0, len(recommendations))
	for _, rec := range recommendations {
		// Out-of-range indices from the model are dropped, not an error.
		if rec.PlaceIndex < 0 || rec.PlaceIndex >= len(candidates) {
			continue
		}
		place := candidates[rec.PlaceIndex]
		place.RecommendationReason = rec.Reason
		recommended = append(recommended, place)
	}

	return &dto.RoutePlacesResponse{
		Query:              query,
		SearchLocationType: string(anchorKind),
		AllPlaces:          candidates,
		RecommendedPlaces:  recommended,
		TotalFound:         len(candidates),
	}, nil
}

// enrich fetches the extended record for one candidate. A failed details
// lookup degrades that single place to its bare search-result fields.
func (s *PlacesService) enrich(ctx context.Context, result maps.PlaceResult) dto.Place {
	details, err := s.maps.Details(ctx, result.PlaceID)
	if err != nil {
		log.Printf("place details failed for %s: %v", result.PlaceID, err)
		address := result.FormattedAddress
		if address == "" {
			address = "Address not available"
		}
		return dto.Place{
			PlaceID:          result.PlaceID,
			Name:             result.Name,
			Geometry:         result.Geometry,
			Rating:           result.Rating,
			FormattedAddress: address,
		}
	}

	place := dto.Place{
		PlaceID:          result.PlaceID,
		Name:             details.Name,
		Geometry:         details.Geometry,
		Rating:           details.Rating,
		UserRatingsTotal: details.UserRatingsTotal,
		PriceLevel:       details.PriceLevel,
		FormattedAddress: details.FormattedAddress,
		Phone:            normalizePhone(details.FormattedPhoneNumber),
		Website:          details.Website,
		Types:            details.Types,
	}
	if len(details.Photos) > 0 && details.Photos[0].PhotoReference != "" {
		place.PhotoURL = s.maps.PhotoURL(details.Photos[0].PhotoReference)
	}
	if details.OpeningHours != nil {
		place.OpeningHours = details.OpeningHours.WeekdayText
	}
	return place
}

// normalizePhone formats a details phone number internationally, keeping the
// raw value when it does not parse as a valid number.
func normalizePhone(raw string) string {
	if raw == "" {
		return ""
	}
	number, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return raw
	}
	return phonenumbers.Format(number, phonenumbers.INTERNATIONAL)
}
