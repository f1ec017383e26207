// Package maps wraps the Google Maps web service operations this API needs:
// places text search, place details, geocoding and the photo URL scheme.
package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrNotConfigured is returned by the disabled client when no API key was supplied.
var ErrNotConfigured = errors.New("GOOGLE_API_KEY not configured in environment")

const defaultBaseURL = "https://maps.googleapis.com/maps/api"

// API is the subset of the Maps web service consumed by the pipelines.
type API interface {
	TextSearch(ctx context.Context, req TextSearchRequest) ([]PlaceResult, error)
	Details(ctx context.Context, placeID string) (*PlaceDetails, error)
	Geocode(ctx context.Context, address string) ([]GeocodeResult, error)
	PhotoURL(photoReference string) string
}

// Client calls the Maps web service over HTTP with a shared API key.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient builds a Maps client. A nil http.Client gets a 15 s timeout default.
func NewClient(apiKey string, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{apiKey: apiKey, baseURL: defaultBaseURL, client: client}
}

var detailsFields = "place_id,name,geometry,rating,user_ratings_total," +
	"price_level,opening_hours,photos,formatted_address,formatted_phone_number,website,types"

// TextSearch runs a places text search, optionally biased toward a location.
// ZERO_RESULTS is an empty slice, not an error.
func (c *Client) TextSearch(ctx context.Context, req TextSearchRequest) ([]PlaceResult, error) {
	params := url.Values{}
	params.Set("query", req.Query)
	if req.Location != nil {
		params.Set("location", fmt.Sprintf("%f,%f", req.Location.Lat, req.Location.Lng))
	}
	if req.RadiusM > 0 {
		params.Set("radius", strconv.Itoa(req.RadiusM))
	}
	if req.Type != "" {
		params.Set("type", req.Type)
	}

	var payload textSearchResponse
	if err := c.get(ctx, "/place/textsearch/json", params, &payload); err != nil {
		return nil, err
	}
	if err := checkStatus(payload.Status, payload.ErrorMessage); err != nil {
		return nil, fmt.Errorf("text search: %w", err)
	}
	return payload.Results, nil
}

// Details fetches the extended record for a single place.
func (c *Client) Details(ctx context.Context, placeID string) (*PlaceDetails, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailsFields)

	var payload detailsResponse
	if err := c.get(ctx, "/place/details/json", params, &payload); err != nil {
		return nil, err
	}
	if err := checkStatus(payload.Status, payload.ErrorMessage); err != nil {
		return nil, fmt.Errorf("place details: %w", err)
	}
	return &payload.Result, nil
}

// Geocode resolves a free-text address to coordinates.
func (c *Client) Geocode(ctx context.Context, address string) ([]GeocodeResult, error) {
	params := url.Values{}
	params.Set("address", address)

	var payload geocodeResponse
	if err := c.get(ctx, "/geocode/json", params, &payload); err != nil {
		return nil, err
	}
	if err := checkStatus(payload.Status, payload.ErrorMessage); err != nil {
		return nil, fmt.Errorf("geocode: %w", err)
	}
	return payload.Results, nil
}

// PhotoURL builds the serving URL for a photo reference.
func (c *Client) PhotoURL(photoReference string) string {
	params := url.Values{}
	params.Set("maxwidth", "400")
	params.Set("photoreference", photoReference)
	params.Set("key", c.apiKey)
	return c.baseURL + "/place/photo?" + params.Encode()
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create maps request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("maps request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("maps API returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("could not decode maps response: %w", err)
	}
	return nil
}

func checkStatus(status, errorMessage string) error {
	switch status {
	case "OK", "ZERO_RESULTS":
		return nil
	}
	if errorMessage != "" {
		return fmt.Errorf("%s: %s", status, errorMessage)
	}
	return fmt.Errorf("unexpected status %s", status)
}

// Disabled is the null client substituted when no API key is present. Every
// operation fails with ErrNotConfigured; the check happens once at the boundary.
type Disabled struct{}

func (Disabled) TextSearch(context.Context, TextSearchRequest) ([]PlaceResult, error) {
	return nil, ErrNotConfigured
}

func (Disabled) Details(context.Context, string) (*PlaceDetails, error) {
	return nil, ErrNotConfigured
}

func (Disabled) Geocode(context.Context, string) ([]GeocodeResult, error) {
	return nil, ErrNotConfigured
}

func (Disabled) PhotoURL(string) string { return "" }

var (
	_ API = (*Client)(nil)
	_ API = Disabled{}
)
