package maps

import "github.com/waypointlabs/semantic-maps-api/internal/dto"

// TextSearchRequest describes one call to the Places text-search endpoint.
// Location and Type are optional; RadiusM of zero means no radius parameter.
type TextSearchRequest struct {
	Query    string
	Location *dto.LatLng
	RadiusM  int
	Type     string
}

// PlaceResult is a single entry of a text-search response.
type PlaceResult struct {
	PlaceID          string       `json:"place_id"`
	Name             string       `json:"name"`
	Geometry         dto.Geometry `json:"geometry"`
	Rating           *float64     `json:"rating"`
	UserRatingsTotal int          `json:"user_ratings_total"`
	PriceLevel       int          `json:"price_level"`
	FormattedAddress string       `json:"formatted_address"`
	Types            []string     `json:"types"`
}

// RatingValue returns the rating or zero when the result has none.
func (p PlaceResult) RatingValue() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

// Photo references an image served by the place-photo endpoint.
type Photo struct {
	PhotoReference string `json:"photo_reference"`
}

// OpeningHours carries the human-readable weekday schedule.
type OpeningHours struct {
	WeekdayText []string `json:"weekday_text"`
}

// PlaceDetails is the extended record returned by the details endpoint.
type PlaceDetails struct {
	PlaceID              string        `json:"place_id"`
	Name                 string        `json:"name"`
	Geometry             dto.Geometry  `json:"geometry"`
	Rating               *float64      `json:"rating"`
	UserRatingsTotal     int           `json:"user_ratings_total"`
	PriceLevel           int           `json:"price_level"`
	FormattedAddress     string        `json:"formatted_address"`
	FormattedPhoneNumber string        `json:"formatted_phone_number"`
	Website              string        `json:"website"`
	Photos               []Photo       `json:"photos"`
	OpeningHours         *OpeningHours `json:"opening_hours"`
	Types                []string      `json:"types"`
}

// GeocodeResult is a single entry of a geocoding response.
type GeocodeResult struct {
	FormattedAddress string       `json:"formatted_address"`
	Geometry         dto.Geometry `json:"geometry"`
}

type textSearchResponse struct {
	Results      []PlaceResult `json:"results"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message"`
}

type detailsResponse struct {
	Result       PlaceDetails `json:"result"`
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message"`
}

type geocodeResponse struct {
	Results      []GeocodeResult `json:"results"`
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message"`
}
