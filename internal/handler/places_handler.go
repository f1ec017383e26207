package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/waypointlabs/semantic-maps-api/internal/dto"
	"github.com/waypointlabs/semantic-maps-api/internal/route"
	"github.com/waypointlabs/semantic-maps-api/internal/service"
)

// PlacesHandler serves semantic place searches along a driving route.
type PlacesHandler struct {
	places    *service.PlacesService
	configErr error
}

// NewPlacesHandler wires the handler. A non-nil configErr marks a missing
// upstream credential and is reported per request.
func NewPlacesHandler(places *service.PlacesService, configErr error) *PlacesHandler {
	return &PlacesHandler{places: places, configErr: configErr}
}

// Find handles POST /api/find-places-on-route.
func (h *PlacesHandler) Find(c echo.Context) error {
	if h.configErr != nil {
		return Error(c, http.StatusInternalServerError, h.configErr.Error())
	}

	var req dto.RouteQuery
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusUnprocessableEntity, "invalid payload")
	}
	if strings.TrimSpace(req.Query) == "" {
		return Error(c, http.StatusUnprocessableEntity, "query is required")
	}

	resp, err := h.places.FindAlongRoute(c.Request().Context(), req.Query, req.Route)
	if err != nil {
		var upstream *service.UpstreamSearchError
		switch {
		case errors.Is(err, route.ErrShape):
			return Error(c, http.StatusBadRequest, fmt.Sprintf("Invalid route object supplied: %v", err))
		case errors.As(err, &upstream):
			return Error(c, http.StatusBadGateway, upstream.Error())
		default:
			return Error(c, http.StatusInternalServerError, fmt.Sprintf("Gemini parsing error: %v", err))
		}
	}
	return c.JSON(http.StatusOK, resp)
}
