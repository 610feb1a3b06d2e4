package casestore

import "errors"

var (
	// ErrConflict is returned by Create when case_id already exists.
	ErrConflict = errors.New("casestore: case already exists")

	// ErrNotFound is returned when a case_id has no matching row.
	ErrNotFound = errors.New("casestore: case not found")

	// ErrConcurrencyConflict is returned by AtomicUpdate when the stored
	// version no longer matches the expected version.
	ErrConcurrencyConflict = errors.New("casestore: concurrent modification, expected version is stale")
)
