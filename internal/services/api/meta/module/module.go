// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"
	"time"

	modkit "readathon/internal/modkit"
	"readathon/internal/modkit/httpkit"
	str "readathon/internal/platform/strings"

	metahttp "readathon/internal/services/api/meta/http"
)

// Module satisfies the module contract
type Module struct {
	name      string
	prefix    string
	mws       []func(http.Handler) http.Handler
	register  func(httpkit.Router)
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	built := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	started := time.Now()
	extra := built.Register

	return &Module{
		name:      built.Name,
		prefix:    built.Prefix,
		mws:       built.Mw,
		startedAt: started,
		register: func(r httpkit.Router) {
			metahttp.Register(r, metahttp.Deps{
				ServiceName: "readathon-api",
				StartedAt:   started,
				PG:          deps.PG,
			})
			if extra != nil {
				extra(r)
			}
		},
	}
}

// Name satisfies the module contract
func (m *Module) Name() string {
	return str.MustString(m.name, "meta")
}

// Prefix satisfies the module contract
func (m *Module) Prefix() string {
	return str.MustPrefix(m.prefix)
}

// Ports satisfies the module contract
func (m *Module) Ports() any { return nil }

// MountRoutes satisfies the module contract
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(sub httpkit.Router) {
		for _, mw := range m.mws {
			sub.Use(mw)
		}
		m.register(sub)
	})
}
