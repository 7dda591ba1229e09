package httpkit

import (
	"net/http"

	phttp "readathon/internal/platform/net/http"
)

// Get mounts a body-less handler under GET
func Get(r Router, path string, fn func(*http.Request) (any, error)) {
	r.Get(path, Call(fn))
}

// Post mounts a body-less handler under POST
func Post(r Router, path string, fn func(*http.Request) (any, error)) {
	r.Post(path, Call(fn))
}

// PostJSON mounts a JSON handler under POST. The payload goes through
// bind.ParseJSON, which enforces validate tags before fn sees it
func PostJSON[T any](r Router, path string, fn func(*http.Request, T) (any, error)) {
	r.Post(path, phttp.JSONHandler(fn))
}
