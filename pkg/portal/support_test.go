package portal

import (
	"errors"
	"net/http/httptest"
	"testing"
)

func TestParseClientIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	if got := ParseClientIP(req); got != "10.0.0.1" {
		t.Fatalf("expected remote addr host got %s", got)
	}

	req.Header.Set("X-Forwarded-For", "1.1.1.1, 2.2.2.2")

	if got := ParseClientIP(req); got != "1.1.1.1" {
		t.Fatalf("expected forwarded ip got %s", got)
	}
}

type closeRecorder struct {
	closed bool
	err    error
}

func (c *closeRecorder) Close() error {
	c.closed = true

	return c.err
}

func TestCloseWithLog(t *testing.T) {
	CloseWithLog(nil)

	ok := &closeRecorder{}
	CloseWithLog(ok)

	failing := &closeRecorder{err: errors.New("already closed")}
	CloseWithLog(failing)

	if !ok.closed || !failing.closed {
		t.Fatalf("expected both closers to be closed")
	}
}

func TestStringable(t *testing.T) {
	s := NewStringable("  John.DOE@Example.COM ")

	if got := s.ToEmail(); got != "john.doe@example.com" {
		t.Fatalf("unexpected email %s", got)
	}

	if got := NewStringable(" New   York,  USA ").Squash(); got != "New York, USA" {
		t.Fatalf("unexpected squash %q", got)
	}

	if NewStringable("   ").OrNil() != nil {
		t.Fatalf("expected nil for blank input")
	}

	if v := NewStringable(" bio ").OrNil(); v == nil || *v != "bio" {
		t.Fatalf("expected trimmed value")
	}
}

func TestGetEndpointHost(t *testing.T) {
	if got := getEndpointHost("http://localhost:4318"); got != "localhost:4318" {
		t.Fatalf("unexpected host %s", got)
	}

	if got := getEndpointHost("https://otel.example.com"); got != "otel.example.com" {
		t.Fatalf("unexpected host %s", got)
	}
}
