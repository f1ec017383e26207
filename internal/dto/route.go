package dto

import "encoding/json"

// RouteQuery is the payload for the find-places-on-route endpoint. Route is a
// serialized directions result; its shape is validated downstream, not here.
type RouteQuery struct {
	Query string          `json:"query"`
	Route json.RawMessage `json:"route"`
}

// RoutePlacesResponse is the flat result returned for a route search.
type RoutePlacesResponse struct {
	Query              string  `json:"query"`
	SearchLocationType string  `json:"search_location_type"`
	AllPlaces          []Place `json:"all_places"`
	RecommendedPlaces  []Place `json:"recommended_places"`
	TotalFound         int     `json:"total_found"`
}
