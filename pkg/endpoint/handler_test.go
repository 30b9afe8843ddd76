package endpoint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/profileapi/pkg/portal"
)

func TestNewApiHandler(t *testing.T) {
	h := NewApiHandler(func(w http.ResponseWriter, r *http.Request) *ApiError {
		return UnprocessableEntity("invalid profile", map[string]any{"email": "must be a valid email address"})
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("POST", "/profiles", nil))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d", rec.Code)
	}

	var resp ErrorResponse

	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Error == "" || resp.Status != http.StatusUnprocessableEntity {
		t.Fatalf("invalid response %+v", resp)
	}

	if resp.Data["email"] == nil {
		t.Fatalf("expected field errors in data: %+v", resp.Data)
	}
}

func TestNewApiHandlerPassesThrough(t *testing.T) {
	h := NewApiHandler(func(w http.ResponseWriter, r *http.Request) *ApiError {
		w.WriteHeader(http.StatusTeapot)
		return nil
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestScopeApiErrorRequestID(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(portal.RequestIDHeader, "header-id")

	scopeApiError := &ScopeApiError{request: req}

	if got := scopeApiError.RequestID(); got != "header-id" {
		t.Fatalf("expected header request id, got %s", got)
	}

	ctxReq := req.WithContext(context.WithValue(req.Context(), portal.RequestIDKey, "context-id"))

	scopeApiError.request = ctxReq

	if got := scopeApiError.RequestID(); got != "context-id" {
		t.Fatalf("expected context request id, got %s", got)
	}
}

func TestScopeApiErrorBuildErrorChain(t *testing.T) {
	root := errors.New("root")
	wrapped := fmt.Errorf("layer: %w", root)

	chain := (&ScopeApiError{}).buildErrorChain(wrapped)

	if len(chain) != 2 {
		t.Fatalf("expected 2 errors in chain, got %d", len(chain))
	}

	if chain[0] != wrapped.Error() || chain[1] != root.Error() {
		t.Fatalf("unexpected error chain: %#v", chain)
	}
}

func TestScopeApiErrorEnrichSetsLevelAndTags(t *testing.T) {
	scope := sentry.NewScope()
	req := httptest.NewRequest("POST", "/profiles", nil)

	apiErr := &ApiError{Status: http.StatusInternalServerError, Err: errors.New("boom")}

	NewScopeApiError(scope, req, apiErr).Enrich()

	event := scope.ApplyToEvent(sentry.NewEvent(), nil, nil)
	if event == nil {
		t.Fatalf("expected event after scope enrichment")
	}

	if event.Level != sentry.LevelError {
		t.Fatalf("expected error level, got %s", event.Level)
	}

	if got := event.Tags["http.method"]; got != "POST" {
		t.Fatalf("expected POST method tag, got %s", got)
	}

	if got := event.Tags["http.status_code"]; got != "500" {
		t.Fatalf("expected 500 status code tag, got %s", got)
	}

	if got := event.Tags["http.route"]; got != "/profiles" {
		t.Fatalf("expected /profiles route tag, got %s", got)
	}
}

func TestScopeApiErrorPrefersMuxPattern(t *testing.T) {
	mux := http.NewServeMux()

	var route string
	mux.HandleFunc("GET /profiles/{user_id}", func(w http.ResponseWriter, r *http.Request) {
		route = NewScopeApiError(sentry.NewScope(), r, &ApiError{}).route()
	})

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/profiles/42", nil))

	if route != "/profiles/{user_id}" {
		t.Fatalf("expected pattern route got %q", route)
	}
}

func TestSentryLevels(t *testing.T) {
	cases := map[int]sentry.Level{
		http.StatusNotFound:            sentry.LevelInfo,
		http.StatusTooManyRequests:     sentry.LevelInfo,
		http.StatusBadRequest:          sentry.LevelWarning,
		http.StatusUnprocessableEntity: sentry.LevelWarning,
		http.StatusInternalServerError: sentry.LevelError,
	}

	for status, want := range cases {
		if got := getSentryLevel(status); got != want {
			t.Fatalf("status %d: expected %s got %s", status, want, got)
		}
	}
}
