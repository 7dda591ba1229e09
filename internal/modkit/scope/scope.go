// Package scope carries request-scoped string attributes across module
// boundaries, e.g. the club id stamped by the tenant middleware
package scope

import "context"

// Scope is a flat string map riding on the context
type Scope struct {
	Values map[string]string
}

type key struct{}

// From returns the scope on ctx, always with a usable map
func From(ctx context.Context) Scope {
	s, ok := ctx.Value(key{}).(Scope)
	if !ok || s.Values == nil {
		s.Values = make(map[string]string)
	}
	return s
}

// With merges kv into the scope on ctx. Later writes win
func With(ctx context.Context, kv map[string]string) context.Context {
	s := From(ctx)
	for k, v := range kv {
		s.Values[k] = v
	}
	return context.WithValue(ctx, key{}, s)
}

// Get looks up a single scope value
func Get(ctx context.Context, k string) (string, bool) {
	v, ok := From(ctx).Values[k]
	return v, ok
}
