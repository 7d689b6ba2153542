package fields

import (
	fieldmetrics "pulse/internal/fields/metrics"
	"pulse/internal/tenancy"
	"pulse/pkg/urns"
)

// URNField validates inbound address strings and renders URNs subject to the
// tenant's privacy policy.
//
// Strict is the default: values must both normalize and pass scheme-specific
// semantic validation. WithLenientURNs keeps only the normalization tier.
type URNField struct {
	strict  bool
	metrics *fieldmetrics.Metrics
}

// NewURNField constructs a URN field.
func NewURNField(opts ...Option) *URNField {
	cfg := newConfig(opts...)
	return &URNField{strict: cfg.strict, metrics: cfg.metrics}
}

// ToInternal normalizes raw and, when the field is strict, validates it.
// Both failure paths report the same InvalidURNError with the offending raw
// value embedded: either way the value is not a usable address.
func (f *URNField) ToInternal(raw string) (urns.URN, error) {
	urn, err := urns.Normalize(raw)
	if err != nil {
		f.incRejected()
		return "", &InvalidURNError{Raw: raw}
	}
	if f.strict && !urn.Validate() {
		f.incRejected()
		return "", &InvalidURNError{Raw: raw}
	}
	return urn, nil
}

// ToExternal renders a URN for output. Anonymized tenants never see raw
// addresses: the result is nil (wire null) regardless of the URN's value.
// Otherwise the string form is returned unchanged.
func (f *URNField) ToExternal(urn urns.URN, scope tenancy.Scope) *string {
	if scope.Anonymized {
		return nil
	}
	s := urn.String()
	return &s
}

func (f *URNField) incRejected() {
	if f.metrics != nil {
		f.metrics.IncURNRejected()
	}
}

// URNList adapts a URNField to bounded sequences of addresses, guarding the
// whole sequence before any element is parsed.
type URNList struct {
	field   *URNField
	max     int
	metrics *fieldmetrics.Metrics
}

// NewURNList wraps field as the element handler of a bounded list.
func NewURNList(field *URNField, opts ...Option) *URNList {
	cfg := newConfig(opts...)
	return &URNList{field: field, max: cfg.maxListSize, metrics: cfg.metrics}
}

// ToInternal validates every raw address in input order; the first failure
// aborts the whole list.
func (l *URNList) ToInternal(raws []string) ([]urns.URN, error) {
	if err := CheckListSize(raws, l.max); err != nil {
		if l.metrics != nil {
			l.metrics.IncListRejected()
		}
		return nil, err
	}

	out := make([]urns.URN, 0, len(raws))
	for _, raw := range raws {
		urn, err := l.field.ToInternal(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, urn)
	}
	return out, nil
}

// ToExternal renders every URN in order under the tenant's privacy policy.
// No guard applies on output.
func (l *URNList) ToExternal(values []urns.URN, scope tenancy.Scope) []*string {
	out := make([]*string, 0, len(values))
	for _, urn := range values {
		out = append(out, l.field.ToExternal(urn, scope))
	}
	return out
}
