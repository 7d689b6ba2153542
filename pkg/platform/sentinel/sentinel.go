package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so callers can translate them into domain errors at the layer that
// knows the entity being looked up.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: record does not exist, is inactive, or belongs to another tenant
// - ErrConflict: write collides with an existing record (duplicate UUID or key)
// - ErrUnavailable: backing service temporarily unreachable
//
// For validation errors (bad input, malformed values), use pkg/domain-errors.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)
