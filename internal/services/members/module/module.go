// Package module wires the roster into the API using modkit
package module

import (
	"net/http"

	modkit "readathon/internal/modkit"
	"readathon/internal/modkit/httpkit"
	str "readathon/internal/platform/strings"
	"readathon/internal/services/members/domain"
	membershttp "readathon/internal/services/members/http"
	membersrepo "readathon/internal/services/members/repo"
	memberssvc "readathon/internal/services/members/service"

	"readathon/internal/adapters/sheetrow"
)

// Ports exposed by the members module
type Ports struct {
	Writer domain.WriterPort
	Query  domain.QueryPort
}

// Module implements the members service module
type Module struct {
	name     string
	prefix   string
	mws      []func(http.Handler) http.Handler
	ports    Ports
	register func(httpkit.Router)
}

// New constructs the members module. A nil pusher disables choice-list sync
func New(deps modkit.Deps, pusher sheetrow.NamePusher, opts ...modkit.Option) *Module {
	built := modkit.Build(append([]modkit.Option{
		modkit.WithName("members"),
		modkit.WithPrefix("/members"),
	}, opts...)...)

	svc := memberssvc.New(deps.PG, membersrepo.NewPG(), pusher)
	extra := built.Register

	return &Module{
		name:   built.Name,
		prefix: built.Prefix,
		mws:    built.Mw,
		ports:  Ports{Writer: svc, Query: svc},
		register: func(r httpkit.Router) {
			membershttp.Register(r, svc)
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
