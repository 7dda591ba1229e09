// Package httpkit provides the routing helpers modules mount handlers with,
// so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "readathon/internal/platform/net/http"
)

// Handler is the platform handler type
type Handler = phttp.Handler

// Router is a re-export of the platform router seam
type Router = phttp.Router

// Call adapts a handler that takes no JSON body. A returned Response passes
// through untouched; any other value is enveloped as 200
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) phttp.Response {
		res, err := fn(r)
		if err != nil {
			return phttp.Error(err)
		}
		if resp, ok := res.(phttp.Response); ok {
			return resp
		}
		return phttp.OK(res)
	})
}
