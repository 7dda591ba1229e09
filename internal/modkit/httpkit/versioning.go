package httpkit

import (
	"net/http"
	"strings"
)

// MountAPIV1 mounts under /api/v1
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}

// MountAPI scopes a subrouter under /api/{version}, applies the given
// middleware to it, and hands it to mount for route registration.
//
//	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
//	  members.MountRoutes(api)
//	})
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route("/api/"+strings.TrimPrefix(version, "/"), func(api Router) {
		if len(mw) > 0 {
			api.Use(mw...)
		}
		mount(api)
	})
}
