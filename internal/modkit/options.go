package modkit

import (
	"net/http"

	phttp "readathon/internal/platform/net/http"
)

// Option adjusts how a module is built
type Option func(*assembly)

type assembly struct {
	name     string
	prefix   string
	mw       []func(http.Handler) http.Handler
	register func(phttp.Router)
}

// WithName names the module for logs and the port registry
func WithName(name string) Option {
	return func(a *assembly) { a.name = name }
}

// WithPrefix mounts the module under a path prefix
func WithPrefix(prefix string) Option {
	return func(a *assembly) { a.prefix = prefix }
}

// WithMiddlewares appends per module middleware, applied in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(a *assembly) { a.mw = append(a.mw, mw...) }
}

// WithRegister adds extra endpoints on top of the module's own routes
func WithRegister(fn func(phttp.Router)) Option {
	return func(a *assembly) { a.register = fn }
}
