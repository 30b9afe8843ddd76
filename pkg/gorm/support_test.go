package gorm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	stdgorm "gorm.io/gorm"
)

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(stdgorm.ErrRecordNotFound) {
		t.Fatalf("expected true")
	}

	if IsNotFound(nil) {
		t.Fatalf("nil should be false")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint \"idx_users_email\""}

	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{stdgorm.ErrDuplicatedKey, true},
		{fmt.Errorf("insert: %w", pgErr), true},
		{&pgconn.PgError{Code: "23514"}, false},
		{errors.New("UNIQUE constraint failed: users.email"), true},
		{errors.New("boom"), false},
	}

	for _, c := range cases {
		if got := IsUniqueViolation(c.err); got != c.want {
			t.Fatalf("%v: expected %v got %v", c.err, c.want, got)
		}
	}
}

func TestIsCheckViolation(t *testing.T) {
	if !IsCheckViolation(&pgconn.PgError{Code: "23514"}) {
		t.Fatalf("expected pg check violation")
	}

	if !IsCheckViolation(errors.New("CHECK constraint failed: check_score_range")) {
		t.Fatalf("expected sqlite check violation")
	}

	if IsCheckViolation(stdgorm.ErrRecordNotFound) {
		t.Fatalf("not found is not a check violation")
	}
}
