package domain

import "errors"

var (
	// ErrJobNotFound is returned when the referenced job id has no row.
	ErrJobNotFound = errors.New("job not found")

	// ErrNoFieldsToUpdate is returned when a partial update carries no fields.
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrInvalidTime is returned for timestamps that cannot be parsed.
	// Callers must reject these before anything reaches storage.
	ErrInvalidTime = errors.New("invalid time format")
)
