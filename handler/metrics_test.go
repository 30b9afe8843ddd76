package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/profileapi/database"
	"github.com/profileapi/database/repository"
)

type stubStats struct {
	stats repository.Stats
	err   error
}

func (s stubStats) Stats() (repository.Stats, error) {
	return s.stats, s.err
}

func TestMetricsHandlerRefreshesProfileGauges(t *testing.T) {
	h := NewMetricsHandler(stubStats{stats: repository.Stats{
		Total:        3,
		ByType:       map[database.UserType]int64{database.UserTypeStudent: 2, database.UserTypeTeacher: 1},
		AverageScore: 50,
	}})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	body := rec.Body.String()

	if !strings.Contains(body, `profile_api_profiles{user_type="student"} 2`) {
		t.Fatalf("expected student gauge in exposition")
	}

	if !strings.Contains(body, "profile_api_average_score 50") {
		t.Fatalf("expected average score gauge in exposition")
	}
}

func TestMetricsHandlerServesWhenStatsFail(t *testing.T) {
	h := NewMetricsHandler(stubStats{err: errors.New("db down")})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
}
