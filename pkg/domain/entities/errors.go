package entities

import "errors"

// Sentinel errors returned by the gating engine. Callers match them with
// errors.Is; wrapping adds the entity and identifier involved.
var (
	// ErrNotFound indicates a referenced order, work order or assignment does
	// not exist or is outside the caller's tenant scope.
	ErrNotFound = errors.New("not found")

	// ErrInvalidRequest indicates a malformed or empty mutation request.
	// The request is rejected before any state is touched.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvariantViolation indicates stored data that contradicts a model
	// invariant, such as a work order whose assignment is missing from the
	// plan. It is a fatal data-integrity condition and is never retried.
	ErrInvariantViolation = errors.New("invariant violation")
)
