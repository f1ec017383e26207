package dto

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geometry carries the location block of a place result.
type Geometry struct {
	Location LatLng `json:"location"`
}

// Place is a candidate assembled from a text search plus a details lookup.
// Built once per search and immutable afterwards; never persisted.
type Place struct {
	PlaceID              string   `json:"place_id"`
	Name                 string   `json:"name"`
	Geometry             Geometry `json:"geometry"`
	Rating               *float64 `json:"rating"`
	UserRatingsTotal     int      `json:"user_ratings_total,omitempty"`
	PriceLevel           int      `json:"price_level,omitempty"`
	FormattedAddress     string   `json:"formatted_address"`
	Phone                string   `json:"phone,omitempty"`
	Website              string   `json:"website,omitempty"`
	PhotoURL             string   `json:"photo_url,omitempty"`
	OpeningHours         []string `json:"opening_hours,omitempty"`
	Types                []string `json:"types,omitempty"`
	RecommendationReason string   `json:"recommendation_reason,omitempty"`
}

// RatingValue returns the rating or zero when the place has none.
func (p Place) RatingValue() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

// Recommendation is one entry of the model's ranking reply, joined against
// candidates by index.
type Recommendation struct {
	PlaceIndex int    `json:"place_index"`
	Reason     string `json:"reason"`
}
