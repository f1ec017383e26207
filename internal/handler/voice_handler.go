package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/waypointlabs/semantic-maps-api/internal/dto"
	"github.com/waypointlabs/semantic-maps-api/internal/gemini"
	"github.com/waypointlabs/semantic-maps-api/internal/service"
)

// VoiceHandler parses natural-language voice commands into structured routes.
type VoiceHandler struct {
	gen       gemini.Generator
	resolver  *service.ResolverService
	configErr error
}

// NewVoiceHandler wires the handler. A non-nil configErr marks a missing
// upstream credential and is reported per request.
func NewVoiceHandler(gen gemini.Generator, resolver *service.ResolverService, configErr error) *VoiceHandler {
	return &VoiceHandler{gen: gen, resolver: resolver, configErr: configErr}
}

// Parse handles POST /api/parse-voice-query: model parse first, then the
// best-effort vague-location resolution pass.
func (h *VoiceHandler) Parse(c echo.Context) error {
	if h.configErr != nil {
		return Error(c, http.StatusInternalServerError, h.configErr.Error())
	}

	var req dto.VoiceQuery
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusUnprocessableEntity, "invalid payload")
	}
	req.Command = strings.TrimSpace(req.Command)
	if req.Command == "" {
		return Error(c, http.StatusUnprocessableEntity, "command is required")
	}

	ctx := c.Request().Context()
	parsed, err := gemini.ParseVoiceCommand(ctx, h.gen, req.Command)
	if err != nil {
		return Error(c, http.StatusInternalServerError, fmt.Sprintf("Failed to parse voice command with Gemini: %v", err))
	}

	resolved := h.resolver.ResolveCommand(ctx, parsed, req.Command)
	return c.JSON(http.StatusOK, resolved)
}
