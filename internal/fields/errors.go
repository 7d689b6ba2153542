package fields

import (
	"fmt"

	dErrors "pulse/pkg/domain-errors"
)

// The field error taxonomy. All four are client-input errors: they embed the
// triggering value, carry a domain-errors code via Coder, and are never
// retried or coerced to defaults. Infrastructure faults from the Catalog are
// deliberately outside this taxonomy and pass through unwrapped.

// ListSizeError reports an input sequence at or over the cardinality ceiling.
type ListSizeError struct {
	Max int
}

func (e *ListSizeError) Error() string {
	return fmt.Sprintf("exceeds maximum list size of %d", e.Max)
}

func (e *ListSizeError) Code() dErrors.Code { return dErrors.CodeValidation }

// InvalidURNError reports an address that could not be normalized or that
// failed strict validation. Both cases share one error: from the caller's
// perspective either way the value is not a usable address.
type InvalidURNError struct {
	Raw string
}

func (e *InvalidURNError) Error() string {
	return fmt.Sprintf("Invalid URN: %s. Ensure phone numbers contain country codes.", e.Raw)
}

func (e *InvalidURNError) Code() dErrors.Code { return dErrors.CodeValidation }

// NoSuchObjectError reports a token that does not resolve to a live,
// tenant-owned, active record of the expected entity type.
type NoSuchObjectError struct {
	Entity string
	Token  string
}

func (e *NoSuchObjectError) Error() string {
	return fmt.Sprintf("No such %s with UUID: %s", e.Entity, e.Token)
}

func (e *NoSuchObjectError) Code() dErrors.Code { return dErrors.CodeNotFound }

// NoSuchFieldError reports a business key with no live, tenant-owned field
// definition behind it.
type NoSuchFieldError struct {
	Key string
}

func (e *NoSuchFieldError) Error() string {
	return fmt.Sprintf("No such contact field with key: %s", e.Key)
}

func (e *NoSuchFieldError) Code() dErrors.Code { return dErrors.CodeNotFound }
