package http

import "net/http"

// Handler is the function signature every route in the app mounts with.
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the slice of mux behavior modules are allowed to touch.
// Keeping it an interface lets tests mount against a plain chi router
// and keeps chi itself out of module signatures.
type Router interface {
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))
	Handle(pattern string, h http.Handler)

	Get(pattern string, h Handler)
	Post(pattern string, h Handler)
	Put(pattern string, h Handler)
	Patch(pattern string, h Handler)
	Delete(pattern string, h Handler)
	Head(pattern string, h Handler)
	Options(pattern string, h Handler)

	Mux() http.Handler
}
