package handler

import (
	"context"
	"errors"

	"github.com/waypointlabs/semantic-maps-api/internal/maps"
)

// stubGenerator replies per prompt; stubMaps replies per call. Shared by the
// voice and places handler tests.
type stubGenerator struct {
	generate func(prompt string) (string, error)
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	return s.generate(prompt)
}

func (s *stubGenerator) GenerateJSON(_ context.Context, prompt string) (string, error) {
	return s.generate(prompt)
}

type stubMaps struct {
	search  func(req maps.TextSearchRequest) ([]maps.PlaceResult, error)
	details func(placeID string) (*maps.PlaceDetails, error)
	geocode func(address string) ([]maps.GeocodeResult, error)
}

func (s *stubMaps) TextSearch(_ context.Context, req maps.TextSearchRequest) ([]maps.PlaceResult, error) {
	if s.search == nil {
		return nil, nil
	}
	return s.search(req)
}

func (s *stubMaps) Details(_ context.Context, placeID string) (*maps.PlaceDetails, error) {
	if s.details == nil {
		return nil, errors.New("no details")
	}
	return s.details(placeID)
}

func (s *stubMaps) Geocode(_ context.Context, address string) ([]maps.GeocodeResult, error) {
	if s.geocode == nil {
		return nil, nil
	}
	return s.geocode(address)
}

func (s *stubMaps) PhotoURL(ref string) string { return "https://photos.test/" + ref }
