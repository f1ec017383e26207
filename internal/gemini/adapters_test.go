package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/waypointlabs/semantic-maps-api/internal/dto"
)

// fakeGenerator replays canned replies and records the prompts it saw.
type fakeGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func (f *fakeGenerator) GenerateJSON(_ context.Context, prompt string) (string, error) {
	return f.Generate(context.Background(), prompt)
}

func ratingPtr(v float64) *float64 { return &v }

func TestParseVoiceCommand(t *testing.T) {
	gen := &fakeGenerator{reply: `{"origin":"McDonalds","destination":"the other one","semanticQuery":"","isVague":true,"vagueContext":"McDonalds"}`}

	parsed, err := ParseVoiceCommand(context.Background(), gen, "I'm in McDonalds and want to go to the other one")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Destination != "the other one" || !parsed.IsVague || parsed.VagueContext != "McDonalds" {
		t.Fatalf("unexpected parse: %+v", parsed)
	}
	if len(gen.prompts) != 1 || !strings.Contains(gen.prompts[0], "User command to parse") {
		t.Fatalf("prompt not built as expected")
	}
}

func TestParseVoiceCommandFailures(t *testing.T) {
	t.Run("generation error", func(t *testing.T) {
		gen := &fakeGenerator{err: errors.New("quota exceeded")}
		if _, err := ParseVoiceCommand(context.Background(), gen, "anything"); err == nil {
			t.Fatalf("expected error to propagate")
		}
	})

	t.Run("malformed reply", func(t *testing.T) {
		gen := &fakeGenerator{reply: "definitely not json"}
		if _, err := ParseVoiceCommand(context.Background(), gen, "anything"); err == nil {
			t.Fatalf("expected decode error to propagate")
		}
	})
}

func TestExtractSearchTerms(t *testing.T) {
	gen := &fakeGenerator{reply: "```json\n{\"search_query\":\"coffee shop\",\"place_type\":\"cafe\"}\n```"}

	terms, err := ExtractSearchTerms(context.Background(), gen, "good coffee along the route")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if terms.SearchQuery != "coffee shop" || terms.PlaceType != "cafe" {
		t.Fatalf("unexpected terms: %+v", terms)
	}

	gen = &fakeGenerator{reply: "oops"}
	if _, err := ExtractSearchTerms(context.Background(), gen, "anything"); err == nil {
		t.Fatalf("expected decode error to propagate")
	}
}

func TestRecommendPlaces(t *testing.T) {
	places := []dto.Place{
		{Name: "First", Rating: ratingPtr(4.8)},
		{Name: "Second", Rating: ratingPtr(4.2)},
		{Name: "Third"},
		{Name: "Fourth", Rating: ratingPtr(3.9)},
	}

	t.Run("model ranking used when valid", func(t *testing.T) {
		gen := &fakeGenerator{reply: `{"recommendations":[{"place_index":2,"reason":"quiet spot"}]}`}
		recs := RecommendPlaces(context.Background(), gen, places, "coffee")
		if len(recs) != 1 || recs[0].PlaceIndex != 2 || recs[0].Reason != "quiet spot" {
			t.Fatalf("unexpected recommendations: %+v", recs)
		}
	})

	t.Run("fallback on generation error", func(t *testing.T) {
		gen := &fakeGenerator{err: errors.New("down")}
		recs := RecommendPlaces(context.Background(), gen, places, "coffee")
		if len(recs) != 3 {
			t.Fatalf("expected 3 fallback recommendations, got %d", len(recs))
		}
		for i, rec := range recs {
			if rec.PlaceIndex != i {
				t.Fatalf("fallback must keep original order: %+v", recs)
			}
			if !strings.Contains(rec.Reason, "Highly rated") {
				t.Fatalf("fallback reason missing rating text: %q", rec.Reason)
			}
		}
		if !strings.Contains(recs[0].Reason, "4.8") {
			t.Fatalf("fallback reason must include the rating: %q", recs[0].Reason)
		}
		if !strings.Contains(recs[2].Reason, "N/A") {
			t.Fatalf("missing rating must read N/A: %q", recs[2].Reason)
		}
	})

	t.Run("fallback on malformed reply", func(t *testing.T) {
		gen := &fakeGenerator{reply: "not json at all"}
		recs := RecommendPlaces(context.Background(), gen, places[:2], "coffee")
		if len(recs) != 2 {
			t.Fatalf("expected min(3, len) recommendations, got %d", len(recs))
		}
	})

	t.Run("fallback with empty candidate list", func(t *testing.T) {
		gen := &fakeGenerator{err: errors.New("down")}
		if recs := RecommendPlaces(context.Background(), gen, nil, "coffee"); len(recs) != 0 {
			t.Fatalf("expected no recommendations, got %+v", recs)
		}
	})
}

func TestResolveLocationQuery(t *testing.T) {
	gen := &fakeGenerator{reply: `{"search_query":"McDonald's UTC La Jolla","location_type":"business","explanation":"chain near a landmark"}`}

	query, err := ResolveLocationQuery(context.Background(), gen, "a McDonald's next to UTC", "destination", "8875 Costa Verde Boulevard")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query.SearchQuery != "McDonald's UTC La Jolla" || query.LocationType != "business" {
		t.Fatalf("unexpected query: %+v", query)
	}
	if !strings.Contains(gen.prompts[0], "currently at or near") {
		t.Fatalf("reference location missing from prompt")
	}

	t.Run("defaults applied", func(t *testing.T) {
		gen := &fakeGenerator{reply: `{}`}
		query, err := ResolveLocationQuery(context.Background(), gen, "the mall", "origin", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if query.SearchQuery != "the mall" || query.LocationType != "business" {
			t.Fatalf("expected defaults, got %+v", query)
		}
	})
}

func TestBroadSearchQuery(t *testing.T) {
	gen := &fakeGenerator{reply: `{"search_query":"McDonalds restaurant","explanation":"looking for another branch"}`}

	query, err := BroadSearchQuery(context.Background(), gen, "go to the other McDonalds", "McDonalds")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query.SearchQuery != "McDonalds restaurant" {
		t.Fatalf("unexpected query: %+v", query)
	}

	gen = &fakeGenerator{reply: `{}`}
	query, err = BroadSearchQuery(context.Background(), gen, "cmd", "McDonalds")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query.SearchQuery != "McDonalds" {
		t.Fatalf("expected vague context fallback, got %+v", query)
	}
}

func TestStripFences(t *testing.T) {
	cases := []struct{ in, want string }{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"{\"a\":1}", `{"a":1}`},
		{"  ```\n{\"a\":1}\n```  ", `{"a":1}`},
	}
	for _, tc := range cases {
		if got := stripFences(tc.in); got != tc.want {
			t.Fatalf("stripFences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPlaceSummary(t *testing.T) {
	place := dto.Place{
		Name:             "Blue Bottle",
		Rating:           ratingPtr(4.6),
		UserRatingsTotal: 812,
		PriceLevel:       2,
		FormattedAddress: "66 Mint St, San Francisco",
		Types:            []string{"cafe", "food", "point_of_interest", "establishment"},
	}
	summary := placeSummary(0, place)
	want := "Place 1: Blue Bottle (Rating: 4.6, Reviews: 812, Price: $$, Types: cafe, food, point_of_interest, Address: 66 Mint St, San Francisco)"
	if summary != want {
		t.Fatalf("unexpected summary:\n got %s\nwant %s", summary, want)
	}

	bare := placeSummary(1, dto.Place{})
	if !strings.Contains(bare, "Unknown") || !strings.Contains(bare, "N/A") {
		t.Fatalf("bare place summary missing placeholders: %s", bare)
	}
	if !strings.Contains(bare, fmt.Sprintf("Price: %s", "$")) {
		t.Fatalf("price floor of one dollar sign expected: %s", bare)
	}
}
