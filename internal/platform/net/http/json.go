package http

import (
	"net/http"

	"readathon/internal/platform/net/http/bind"
)

// JSONHandler adapts a payload-taking handler to a platform Handler.
// The body is bound and validated before fn runs; fn may return a
// Response to pick its own status, anything else is enveloped as 200
func JSONHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		payload, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}

		res, err := fn(r, payload)
		if err != nil {
			return Error(err)
		}
		if resp, ok := res.(Response); ok {
			return resp
		}
		return OK(res)
	})
}
