package repository

import "errors"

var (
	ErrNotFound        = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrScoreOutOfRange = errors.New("score must be between 0 and 100")
	ErrInvalidUserType = errors.New("invalid user type")
	ErrInvalidName     = errors.New("name must be between 2 and 100 characters")
	ErrConstraint      = errors.New("profile violates a table constraint")
)

const (
	MinScore = 0.0
	MaxScore = 100.0

	MinNameLength = 2
	MaxNameLength = 100
)
