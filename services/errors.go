package services

import "errors"

// Domain sentinels. Controllers map these to HTTP statuses; anything else
// coming out of a service is treated as a store failure.
var (
	// ErrValidation wraps malformed input. Nothing is persisted when it fires.
	ErrValidation = errors.New("validation_error")

	// ErrNotFoundOrUnauthorized covers both a missing row and a token
	// mismatch. The two cases are indistinguishable on purpose so callers
	// cannot probe which guests exist.
	ErrNotFoundOrUnauthorized = errors.New("not_found_or_unauthorized")

	ErrTableFull       = errors.New("table_full")
	ErrAlreadyAssigned = errors.New("already_assigned")
)
