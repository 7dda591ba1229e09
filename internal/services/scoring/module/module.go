// Package module wires the scoring engine into the API using modkit
package module

import (
	"net/http"

	modkit "readathon/internal/modkit"
	"readathon/internal/modkit/httpkit"
	str "readathon/internal/platform/strings"
	journaldomain "readathon/internal/services/journal/domain"
	memberdomain "readathon/internal/services/members/domain"
	perioddomain "readathon/internal/services/periods/domain"
	"readathon/internal/services/scoring/domain"
	scoringhttp "readathon/internal/services/scoring/http"
	scoringrepo "readathon/internal/services/scoring/repo"
	scoringsvc "readathon/internal/services/scoring/service"
)

// Ports exposed by the scoring module
type Ports struct {
	Recompute domain.RecomputePort
	Query     domain.QueryPort
}

// Module implements the scoring service module
type Module struct {
	name     string
	prefix   string
	mws      []func(http.Handler) http.Handler
	ports    Ports
	register func(httpkit.Router)
}

// New constructs the scoring module from the upstream ports
func New(
	deps modkit.Deps,
	journal journaldomain.QueryPort,
	periods perioddomain.QueryPort,
	members memberdomain.QueryPort,
	opts ...modkit.Option,
) *Module {
	built := modkit.Build(append([]modkit.Option{
		modkit.WithName("scoring"),
		modkit.WithPrefix("/stats"),
	}, opts...)...)

	svc := scoringsvc.New(deps.PG, scoringrepo.NewPG(), journal, periods, members)
	extra := built.Register

	return &Module{
		name:   built.Name,
		prefix: built.Prefix,
		mws:    built.Mw,
		ports:  Ports{Recompute: svc, Query: svc},
		register: func(r httpkit.Router) {
			scoringhttp.Register(r, svc)
			if extra != nil {
				extra(r)
			}
		},
	}
}

// Name returns the module name
func (m *Module) Name() string {
	return str.MustString(m.name, "module name")
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(str.MustPrefix(m.prefix), func(sub httpkit.Router) {
		for _, mw := range m.mws {
			sub.Use(mw)
		}
		m.register(sub)
	})
}
