// Package tenancy carries the tenant scope every record lookup executes under.
//
// Scope is resolved by the caller (session middleware, worker dispatch, test
// setup) before any field-level work begins; this package only transports it.
// Lookups given a zero scope match no records, so a missing scope fails closed.
package tenancy

import (
	id "pulse/pkg/domain"
)

// Scope identifies the tenant on whose behalf a request executes.
//
// Anonymized marks tenants whose contact addresses must never be exposed:
// rendering code returns null in place of URNs for such tenants. The flag
// rides with the scope because it is a property of the tenant, not of any
// individual record.
type Scope struct {
	TenantID   id.TenantID
	Anonymized bool
}

// IsZero reports whether the scope is unset.
func (s Scope) IsZero() bool {
	return s.TenantID.IsZero()
}
