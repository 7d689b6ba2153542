package fields

import (
	"context"

	fieldmetrics "pulse/internal/fields/metrics"
	"pulse/internal/tenancy"
)

// ReferenceList adapts a Reference to ordered sequences of tokens. The size
// guard runs against the whole sequence before any element is resolved.
type ReferenceList[R Record] struct {
	ref     *Reference[R]
	max     int
	metrics *fieldmetrics.Metrics
}

// NewReferenceList wraps ref as the element resolver of a bounded list.
func NewReferenceList[R Record](ref *Reference[R], opts ...Option) *ReferenceList[R] {
	cfg := newConfig(opts...)
	return &ReferenceList[R]{ref: ref, max: cfg.maxListSize, metrics: cfg.metrics}
}

// ResolveAll resolves every token in input order. Elements are resolved
// sequentially, left to right, and the first failure aborts the whole
// operation; there is no partial success. Elements after a failing one are
// never inspected.
func (l *ReferenceList[R]) ResolveAll(ctx context.Context, scope tenancy.Scope, tokens []string) ([]R, error) {
	if err := CheckListSize(tokens, l.max); err != nil {
		if l.metrics != nil {
			l.metrics.IncListRejected()
		}
		return nil, err
	}

	records := make([]R, 0, len(tokens))
	for _, token := range tokens {
		record, err := l.ref.Resolve(ctx, scope, token)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// RenderAll renders every record in order. No guard applies on the way out:
// the ceiling is input admission control, so a collection that grew past it
// server-side still renders un-truncated.
func (l *ReferenceList[R]) RenderAll(records []R) []Ref {
	refs := make([]Ref, 0, len(records))
	for _, record := range records {
		refs = append(refs, l.ref.Render(record))
	}
	return refs
}
