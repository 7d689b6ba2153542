// Package domain defines typed identifiers shared across the module.
//
// IDs are distinct types over uuid.UUID so the compiler rejects cross-type
// assignment. Tenant scope in particular must never be confused with the
// record UUIDs that arrive as untrusted input; record tokens stay plain
// uuid.UUID and are validated at the point of resolution.
package domain

import (
	"github.com/google/uuid"

	dErrors "pulse/pkg/domain-errors"
)

// TenantID identifies a tenant. Every record lookup is scoped by one.
type TenantID uuid.UUID

// NewTenantID returns a fresh random TenantID.
func NewTenantID() TenantID {
	return TenantID(uuid.New())
}

// ParseTenantID validates and converts a string into a TenantID.
// Rejects empty strings, malformed UUIDs and the nil UUID. Use at trust
// boundaries; internal code passes TenantID values around directly.
func ParseTenantID(s string) (TenantID, error) {
	if s == "" {
		return TenantID{}, dErrors.New(dErrors.CodeInvalidInput, "tenant id cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return TenantID{}, dErrors.New(dErrors.CodeInvalidInput, "tenant id is not a valid UUID")
	}
	if u == uuid.Nil {
		return TenantID{}, dErrors.New(dErrors.CodeInvalidInput, "tenant id cannot be the nil UUID")
	}
	return TenantID(u), nil
}

func (id TenantID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the ID is unset. Zero tenant scope matches no records.
func (id TenantID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }
