package tenancy

import "context"

type scopeKey struct{}

// FromContext retrieves the tenant scope from the context.
// Returns the zero Scope if not set; zero scope matches no records.
func FromContext(ctx context.Context) Scope {
	if s, ok := ctx.Value(scopeKey{}).(Scope); ok {
		return s
	}
	return Scope{}
}

// WithScope injects a tenant scope into the context.
func WithScope(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}
