package fields

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	fieldmetrics "pulse/internal/fields/metrics"
	"pulse/internal/records/models"
	"pulse/internal/tenancy"
	"pulse/pkg/platform/sentinel"
)

const fieldDefEntity = "contact field"

// KeyedField resolves field definitions by their stable business key. It
// shares the tenant-scoping and active-record discipline of Reference but
// not its UUID path: keys are exact-match strings, and the rendered shape is
// {key, label} rather than {uuid, name}.
type KeyedField struct {
	catalog Catalog
	logger  *slog.Logger
	metrics *fieldmetrics.Metrics
}

// NewKeyedField constructs a resolver for key-addressed field definitions.
func NewKeyedField(catalog Catalog, opts ...Option) *KeyedField {
	cfg := newConfig(opts...)
	return &KeyedField{catalog: catalog, logger: cfg.logger, metrics: cfg.metrics}
}

// Resolve looks key up among the tenant's active field definitions.
func (f *KeyedField) Resolve(ctx context.Context, scope tenancy.Scope, key string) (*models.FieldDef, error) {
	start := time.Now()
	ctx, span := tracer.Start(ctx, "fields.ResolveKey",
		trace.WithAttributes(attribute.String("entity", fieldDefEntity)))
	defer span.End()

	def, err := f.catalog.FieldByKey(ctx, scope, key)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			f.observe(fieldmetrics.OutcomeNotFound, start)
			if f.logger != nil {
				f.logger.DebugContext(ctx, "field key did not resolve",
					"key", key, "tenant_id", scope.TenantID)
			}
			return nil, &NoSuchFieldError{Key: key}
		}
		f.observe(fieldmetrics.OutcomeError, start)
		return nil, err
	}

	f.observe(fieldmetrics.OutcomeResolved, start)
	return def, nil
}

// Render projects a field definition to its wire shape.
func (f *KeyedField) Render(def *models.FieldDef) FieldRef {
	return FieldRef{Key: def.Key, Label: def.Label}
}

func (f *KeyedField) observe(outcome string, start time.Time) {
	if f.metrics != nil {
		f.metrics.ObserveResolve(fieldDefEntity, outcome, start)
	}
}
