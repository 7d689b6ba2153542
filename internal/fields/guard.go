package fields

// MaxListSize is the default cardinality ceiling for incoming lists.
//
// The boundary is inclusive: a list of exactly MaxListSize elements is
// rejected. That matches the long-observed behavior of the wire API and is
// kept as-is rather than corrected to an exclusive bound.
const MaxListSize = 100

// CheckListSize rejects items when len(items) >= max. It runs before any
// per-item work so an oversized list produces a single early error and no
// element is ever inspected. Pure; the items themselves are not touched.
func CheckListSize[T any](items []T, max int) error {
	if len(items) >= max {
		return &ListSizeError{Max: max}
	}
	return nil
}
