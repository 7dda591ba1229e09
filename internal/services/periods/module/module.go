// Package module wires the reading schedule into the API using modkit
package module

import (
	"net/http"

	modkit "readathon/internal/modkit"
	"readathon/internal/modkit/httpkit"
	str "readathon/internal/platform/strings"
	"readathon/internal/services/periods/domain"
	periodshttp "readathon/internal/services/periods/http"
	periodsrepo "readathon/internal/services/periods/repo"
	periodssvc "readathon/internal/services/periods/service"
)

// Ports exposed by the periods module
type Ports struct {
	Writer domain.WriterPort
	Query  domain.QueryPort
}

// Module implements the periods service module
type Module struct {
	name     string
	prefix   string
	mws      []func(http.Handler) http.Handler
	ports    Ports
	register func(httpkit.Router)
}

// New constructs the periods module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	built := modkit.Build(append([]modkit.Option{
		modkit.WithName("periods"),
		modkit.WithPrefix("/periods"),
	}, opts...)...)

	svc := periodssvc.New(deps.PG, periodsrepo.NewPG())
	extra := built.Register

	return &Module{
		name:   built.Name,
		prefix: built.Prefix,
		mws:    built.Mw,
		ports:  Ports{Writer: svc, Query: svc},
		register: func(r httpkit.Router) {
			periodshttp.Register(r, svc)
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
