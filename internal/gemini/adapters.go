package gemini

import (
	"context"
	"fmt"

	"github.com/waypointlabs/semantic-maps-api/internal/dto"
)

// SearchTerms are the Places search parameters derived from a free-text query.
type SearchTerms struct {
	SearchQuery string `json:"search_query"`
	PlaceType   string `json:"place_type"`
}

// LocationQuery is the model's suggestion for resolving a vague location phrase.
type LocationQuery struct {
	SearchQuery  string `json:"search_query"`
	LocationType string `json:"location_type"`
	Explanation  string `json:"explanation"`
}

// BroadQuery is the model's synthesized search phrase for a vague-context search.
type BroadQuery struct {
	SearchQuery string `json:"search_query"`
	Explanation string `json:"explanation"`
}

// ParseVoiceCommand turns a voice command into a structured parse. Failures
// propagate: the caller reports them as a request error.
func ParseVoiceCommand(ctx context.Context, g Generator, command string) (dto.ParsedCommand, error) {
	reply, err := g.GenerateJSON(ctx, voiceCommandPrompt(command))
	if err != nil {
		return dto.ParsedCommand{}, fmt.Errorf("voice command parsing: %w", err)
	}

	var parsed dto.ParsedCommand
	if err := decodeReply(reply, &parsed); err != nil {
		return dto.ParsedCommand{}, fmt.Errorf("voice command parsing: %w", err)
	}
	return parsed, nil
}

// ExtractSearchTerms derives Places search keywords and an optional place type
// from a user query. Failures propagate.
func ExtractSearchTerms(ctx context.Context, g Generator, query string) (SearchTerms, error) {
	reply, err := g.Generate(ctx, searchTermsPrompt(query))
	if err != nil {
		return SearchTerms{}, fmt.Errorf("search term extraction: %w", err)
	}

	var terms SearchTerms
	if err := decodeReply(reply, &terms); err != nil {
		return SearchTerms{}, fmt.Errorf("search term extraction: %w", err)
	}
	return terms, nil
}

// RecommendPlaces asks the model to rank candidates for the query. It never
// fails: on any model or decode error it degrades to the first three places
// in their original order with a rating-based reason.
func RecommendPlaces(ctx context.Context, g Generator, places []dto.Place, query string) []dto.Recommendation {
	reply, err := g.Generate(ctx, recommendPrompt(places, query))
	if err != nil {
		return fallbackRecommendations(places)
	}

	var ranked struct {
		Recommendations []dto.Recommendation `json:"recommendations"`
	}
	if err := decodeReply(reply, &ranked); err != nil {
		return fallbackRecommendations(places)
	}
	return ranked.Recommendations
}

func fallbackRecommendations(places []dto.Place) []dto.Recommendation {
	n := len(places)
	if n > 3 {
		n = 3
	}
	recs := make([]dto.Recommendation, 0, n)
	for i := 0; i < n; i++ {
		recs = append(recs, dto.Recommendation{
			PlaceIndex: i,
			Reason:     fmt.Sprintf("Highly rated with %s stars", ratingLabel(places[i].Rating)),
		})
	}
	return recs
}

// ResolveLocationQuery asks the model how to search for a vague location
// phrase, optionally anchored to a reference location.
func ResolveLocationQuery(ctx context.Context, g Generator, location, kind, reference string) (LocationQuery, error) {
	reply, err := g.Generate(ctx, locationQueryPrompt(location, kind, reference))
	if err != nil {
		return LocationQuery{}, fmt.Errorf("location query synthesis: %w", err)
	}

	var query LocationQuery
	if err := decodeReply(reply, &query); err != nil {
		return LocationQuery{}, fmt.Errorf("location query synthesis: %w", err)
	}
	if query.SearchQuery == "" {
		query.SearchQuery = location
	}
	if query.LocationType == "" {
		query.LocationType = "business"
	}
	return query, nil
}

// BroadSearchQuery asks the model for a widened search phrase when a
// vague-context nearby search came up empty.
func BroadSearchQuery(ctx context.Context, g Generator, command, vagueContext string) (BroadQuery, error) {
	reply, err := g.Generate(ctx, broadSearchPrompt(command, vagueContext))
	if err != nil {
		return BroadQuery{}, fmt.Errorf("broad query synthesis: %w", err)
	}

	var query BroadQuery
	if err := decodeReply(reply, &query); err != nil {
		return BroadQuery{}, fmt.Errorf("broad query synthesis: %w", err)
	}
	if query.SearchQuery == "" {
		query.SearchQuery = vagueContext
	}
	return query, nil
}
