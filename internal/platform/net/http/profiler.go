package http

import (
	stdhttp "net/http"

	mw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler exposes the chi pprof mux under prefix when enabled.
// Wire it behind a config flag; it has no place on a public listener
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}

	pprofMux := stdhttp.StripPrefix(prefix, mw.Profiler())
	serve := func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		pprofMux.ServeHTTP(w, req)
	}

	// the bare prefix and everything below it both land on the profiler mux
	r.Get(prefix, serve)
	r.Get(prefix+"/*", serve)
}
