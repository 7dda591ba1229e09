package store

import "context"

type tenantKey struct{}

// TenantID retrieves a tenant id from context if present
func TenantID(ctx context.Context) (string, bool) {
	v, _ := ctx.Value(tenantKey{}).(string)
	return v, v != ""
}

// WithTenant stamps a tenant id onto the context so repos can scope
// every statement to one club
func WithTenant(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, tenantKey{}, tenantID)
}
