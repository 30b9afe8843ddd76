package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/profileapi/database/repository"
	handlertests "github.com/profileapi/handler/tests"
	"github.com/profileapi/pkg/endpoint"
	"github.com/profileapi/pkg/portal"
)

func newProfilesHandler(t *testing.T) (ProfilesHandler, *repository.Profiles) {
	t.Helper()

	conn, _ := handlertests.NewTestDB(t)
	repo := &repository.Profiles{DB: conn}

	return NewProfilesHandler(portal.GetDefaultValidator(), repo), repo
}

func newJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer

	switch value := body.(type) {
	case nil:
	case string:
		buf.WriteString(value)
	default:
		if err := json.NewEncoder(&buf).Encode(value); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	return req
}

func withUserID(req *http.Request, id string) *http.Request {
	req.SetPathValue("user_id", id)

	return req
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}

	return out
}

func expectApiError(t *testing.T, err *endpoint.ApiError, status int, message string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected api error %d", status)
	}

	if err.Status != status {
		t.Fatalf("expected status %d, got %d (%s)", status, err.Status, err.Message)
	}

	if message != "" && err.Message != message {
		t.Fatalf("expected message %q, got %q", message, err.Message)
	}
}
