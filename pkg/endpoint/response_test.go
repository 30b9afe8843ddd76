package endpoint

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestResponse_RespondOkAndHasCache(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	r := NewResponseWithCache("salt", 60, rec, req)

	if err := r.RespondOk(map[string]string{"a": "b"}); err != nil {
		t.Fatalf("respond: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	if rec.Header().Get("ETag") != `"salt"` || rec.Header().Get("Cache-Control") != "public, max-age=60" {
		t.Fatalf("headers missing: %v", rec.Header())
	}

	req.Header.Set("If-None-Match", `"salt"`)

	if !r.HasCache() {
		t.Fatalf("expected cache")
	}
}

func TestResponse_NegativeMaxAgeIsClamped(t *testing.T) {
	rec := httptest.NewRecorder()
	r := NewResponseWithCache("salt", -5, rec, httptest.NewRequest("GET", "/", nil))

	if r.cacheControl != "public, max-age=0" {
		t.Fatalf("unexpected cache control %s", r.cacheControl)
	}
}

func TestResponse_NoCache(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	r := NewNoCacheResponse(rec, req)

	if err := r.RespondOk(map[string]string{"a": "b"}); err != nil {
		t.Fatalf("respond: %v", err)
	}

	if rec.Header().Get("Cache-Control") != "no-store" {
		t.Fatalf("unexpected cache-control: %s", rec.Header().Get("Cache-Control"))
	}

	if rec.Header().Get("ETag") != "" {
		t.Fatalf("etag should be empty")
	}

	if r.HasCache() {
		t.Fatalf("expected no cache")
	}
}

func TestResponse_Created(t *testing.T) {
	rec := httptest.NewRecorder()
	r := NewNoCacheResponse(rec, httptest.NewRequest("POST", "/", nil))

	if err := r.RespondCreated(map[string]int{"user_id": 1}); err != nil {
		t.Fatalf("respond: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}

	var body map[string]int
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil || body["user_id"] != 1 {
		t.Fatalf("unexpected body %v (%v)", body, err)
	}
}

func TestResponse_NoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	r := NewNoCacheResponse(rec, httptest.NewRequest("DELETE", "/", nil))

	r.RespondNoContent()

	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("unexpected no content response %d %q", rec.Code, rec.Body.String())
	}
}

func TestErrorConstructors(t *testing.T) {
	cases := []struct {
		err    *ApiError
		status int
	}{
		{LogInternalError("x", errors.New("boom")), http.StatusInternalServerError},
		{BadRequestError("Email already registered"), http.StatusBadRequest},
		{NotFound("User not found"), http.StatusNotFound},
		{UnprocessableEntity("invalid", map[string]any{"name": "required"}), http.StatusUnprocessableEntity},
	}

	for _, c := range cases {
		if c.err.Status != c.status {
			t.Fatalf("expected %d got %d", c.status, c.err.Status)
		}

		if c.err.Err == nil {
			t.Fatalf("expected wrapped error for %d", c.status)
		}
	}

	if BadRequestError("Email already registered").Message != "Email already registered" {
		t.Fatalf("bad request message should be verbatim")
	}
}

func TestParseRequestBody(t *testing.T) {
	type body struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Ann"}`))

	got, err := ParseRequestBody[body](req)
	if err != nil || got.Name != "Ann" {
		t.Fatalf("unexpected parse result %+v (%v)", got, err)
	}

	if _, err := ParseRequestBody[body](httptest.NewRequest("POST", "/", strings.NewReader(""))); err != ErrEmptyBody {
		t.Fatalf("expected empty body error got %v", err)
	}

	if _, err := ParseRequestBody[body](httptest.NewRequest("POST", "/", strings.NewReader("{"))); err == nil {
		t.Fatalf("expected malformed json error")
	}

	huge := `{"name":"` + strings.Repeat("a", MaxRequestSize) + `"}`
	if _, err := ParseRequestBody[body](httptest.NewRequest("POST", "/", strings.NewReader(huge))); err == nil {
		t.Fatalf("expected size error")
	}
}

type trackedBody struct {
	*strings.Reader
	closed bool
}

func (b *trackedBody) Close() error {
	b.closed = true

	return nil
}

func TestParseRequestBodyClosesBody(t *testing.T) {
	type body struct {
		Name string `json:"name"`
	}

	for _, raw := range []string{`{"name":"Ann"}`, "{", ""} {
		tracked := &trackedBody{Reader: strings.NewReader(raw)}

		req := httptest.NewRequest("POST", "/", nil)
		req.Body = tracked

		_, _ = ParseRequestBody[body](req)

		if !tracked.closed {
			t.Fatalf("body %q was not closed", raw)
		}
	}
}
