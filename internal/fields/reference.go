package fields

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	fieldmetrics "pulse/internal/fields/metrics"
	"pulse/internal/tenancy"
	"pulse/pkg/platform/sentinel"
)

var tracer = otel.Tracer("pulse/internal/fields")

// LookupFunc fetches the one active record of type R addressed by u within
// the tenant scope, or sentinel.ErrNotFound. Constructors bind these to
// Catalog methods; binding a func rather than the whole Catalog keeps each
// entity's scoping quirks (alternate views, parent-relation scoping) in the
// Catalog implementation, not duplicated per resolver.
type LookupFunc[R Record] func(ctx context.Context, scope tenancy.Scope, u uuid.UUID) (R, error)

// Reference resolves wire tokens into tenant-scoped records of type R and
// renders records back to the {uuid, name} wire shape.
type Reference[R Record] struct {
	entity  string
	lookup  LookupFunc[R]
	logger  *slog.Logger
	metrics *fieldmetrics.Metrics
}

// NewReference constructs a resolver for the named entity type. The entity
// name appears in error messages and metric labels.
func NewReference[R Record](entity string, lookup LookupFunc[R], opts ...Option) *Reference[R] {
	cfg := newConfig(opts...)
	return &Reference[R]{
		entity:  entity,
		lookup:  lookup,
		logger:  cfg.logger,
		metrics: cfg.metrics,
	}
}

// Entity returns the entity name the resolver was constructed with.
func (f *Reference[R]) Entity() string { return f.entity }

// Resolve looks token up within the tenant scope. A missing record is a
// client-input error, reported once and never retried; infrastructure faults
// from the lookup propagate verbatim so callers can tell the two apart.
func (f *Reference[R]) Resolve(ctx context.Context, scope tenancy.Scope, token string) (R, error) {
	var zero R
	start := time.Now()
	ctx, span := tracer.Start(ctx, "fields.Resolve",
		trace.WithAttributes(attribute.String("entity", f.entity)))
	defer span.End()

	u, err := uuid.Parse(token)
	if err != nil {
		// A token that is not a UUID cannot address any record; it reports
		// the same as a miss rather than as a distinct syntax error.
		f.observe(fieldmetrics.OutcomeNotFound, start)
		return zero, &NoSuchObjectError{Entity: f.entity, Token: token}
	}

	record, err := f.lookup(ctx, scope, u)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			f.observe(fieldmetrics.OutcomeNotFound, start)
			if f.logger != nil {
				f.logger.DebugContext(ctx, "reference did not resolve",
					"entity", f.entity, "token", token, "tenant_id", scope.TenantID)
			}
			return zero, &NoSuchObjectError{Entity: f.entity, Token: token}
		}
		f.observe(fieldmetrics.OutcomeError, start)
		return zero, err
	}

	f.observe(fieldmetrics.OutcomeResolved, start)
	return record, nil
}

// Render projects a record to its wire shape. No tenant check happens here:
// the caller is assumed to hold a legitimately obtained record.
func (f *Reference[R]) Render(record R) Ref {
	return Ref{UUID: record.RecordUUID().String(), Name: record.RecordName()}
}

func (f *Reference[R]) observe(outcome string, start time.Time) {
	if f.metrics != nil {
		f.metrics.ObserveResolve(f.entity, outcome, start)
	}
}
