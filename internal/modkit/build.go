package modkit

import (
	"net/http"

	phttp "readathon/internal/platform/net/http"
)

// Built is the resolved option set a module reads its wiring from
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler

	// Register, when set, attaches caller supplied endpoints after the
	// module's own
	Register func(phttp.Router)
}

// Build folds opts into a Built. The middleware slice is copied so later
// mutation of the caller's slice cannot reach the module
func Build(opts ...Option) Built {
	var a assembly
	for _, apply := range opts {
		apply(&a)
	}

	mw := make([]func(http.Handler) http.Handler, len(a.mw))
	copy(mw, a.mw)

	return Built{Name: a.name, Prefix: a.prefix, Mw: mw, Register: a.register}
}
