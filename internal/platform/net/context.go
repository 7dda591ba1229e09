// Package net provides helpers for request scoped context values
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type tenantKey struct{}

// TenantID returns the tenant (club) id on the context, or ""
func TenantID(ctx context.Context) string {
	v, _ := ctx.Value(tenantKey{}).(string)
	return v
}

// RequestID returns the request id on the context, or ""
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// WithRequest stamps the request id and tenant (club) id on the context.
// Empty values leave the context untouched
func WithRequest(ctx context.Context, reqID, tenantID string) context.Context {
	if reqID != "" {
		// stored under chi's key so chimw.GetReqID finds it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if tenantID != "" {
		ctx = context.WithValue(ctx, tenantKey{}, tenantID)
	}
	return ctx
}
