package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/waypointlabs/semantic-maps-api/internal/dto"
	"github.com/waypointlabs/semantic-maps-api/internal/gemini"
	"github.com/waypointlabs/semantic-maps-api/internal/service"
)

func newVoiceContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/parse-voice-query", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func passthroughResolver(gen gemini.Generator) *service.ResolverService {
	return service.NewResolverService(gen, &stubMaps{}, 0, 0, 0)
}

func TestVoiceHandlerConfigError(t *testing.T) {
	e := echo.New()
	gen := &stubGenerator{generate: func(string) (string, error) { return "", gemini.ErrNotConfigured }}
	handler := NewVoiceHandler(gen, passthroughResolver(gen), gemini.ErrNotConfigured)

	c, rec := newVoiceContext(e, `{"command":"anything"}`)
	_ = handler.Parse(c)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "GEMINI_API_KEY") {
		t.Fatalf("expected configuration detail, got %s", rec.Body.String())
	}
}

func TestVoiceHandlerValidation(t *testing.T) {
	e := echo.New()
	gen := &stubGenerator{generate: func(string) (string, error) { return "", errors.New("must not be called") }}
	handler := NewVoiceHandler(gen, passthroughResolver(gen), nil)

	t.Run("invalid payload", func(t *testing.T) {
		c, rec := newVoiceContext(e, "{")
		_ = handler.Parse(c)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
	})

	t.Run("missing command", func(t *testing.T) {
		c, rec := newVoiceContext(e, `{"command":"  "}`)
		_ = handler.Parse(c)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
	})
}

func TestVoiceHandlerModelFailure(t *testing.T) {
	e := echo.New()
	gen := &stubGenerator{generate: func(string) (string, error) { return "", errors.New("model offline") }}
	handler := NewVoiceHandler(gen, passthroughResolver(gen), nil)

	c, rec := newVoiceContext(e, `{"command":"go downtown"}`)
	_ = handler.Parse(c)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Failed to parse voice command") {
		t.Fatalf("unexpected detail: %s", rec.Body.String())
	}
}

func TestVoiceHandlerSuccess(t *testing.T) {
	e := echo.New()
	gen := &stubGenerator{generate: func(prompt string) (string, error) {
		if strings.Contains(prompt, "travel assistant") {
			return `{"origin":"Golden Gate Bridge","destination":"Price Center","semanticQuery":"pizza on the way"}`, nil
		}
		return "", errors.New("unexpected prompt")
	}}
	handler := NewVoiceHandler(gen, passthroughResolver(gen), nil)

	c, rec := newVoiceContext(e, `{"command":"from the bridge to Price Center, pizza on the way"}`)
	if err := handler.Parse(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resolved dto.ResolvedCommand
	if err := json.Unmarshal(rec.Body.Bytes(), &resolved); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resolved.Origin != "Golden Gate Bridge" || resolved.SemanticQuery != "pizza on the way" {
		t.Fatalf("unexpected response: %+v", resolved)
	}
	if resolved.Resolved {
		t.Fatalf("nothing vague, resolution must not fire: %+v", resolved)
	}
}
