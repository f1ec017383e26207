package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ServiceInfo is the banner returned by the root endpoint.
type ServiceInfo struct {
	Message     string `json:"message"`
	Version     string `json:"version"`
	AIService   string `json:"ai_service"`
	MapsService string `json:"maps_service"`
}

// RootHandler serves the service banner.
type RootHandler struct {
	info ServiceInfo
}

// NewRootHandler builds the root handler.
func NewRootHandler() *RootHandler {
	return &RootHandler{info: ServiceInfo{
		Message:     "Semantic Maps Assistant API",
		Version:     "1.1",
		AIService:   "Google Gemini AI",
		MapsService: "Google Maps",
	}}
}

// Index handles GET / and always succeeds.
func (h *RootHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, h.info)
}
