package gorm

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	stdgorm "gorm.io/gorm"
)

const (
	uniqueViolation = "23505"
	checkViolation  = "23514"
)

func IsNotFound(err error) bool {
	return err != nil && errors.Is(err, stdgorm.ErrRecordNotFound)
}

// IsUniqueViolation reports duplicate key failures from postgres or from the
// sqlite driver used in tests.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, stdgorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func IsCheckViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == checkViolation
	}

	return strings.Contains(err.Error(), "CHECK constraint failed")
}
