// Package module wires the sync engine into the API using modkit
package module

import (
	"net/http"

	modkit "readathon/internal/modkit"
	"readathon/internal/modkit/httpkit"
	str "readathon/internal/platform/strings"

	"readathon/internal/adapters/sheetrow"
	"readathon/internal/core/flagvocab"
	"readathon/internal/services/resync/domain"
	resynchttp "readathon/internal/services/resync/http"
	resyncsvc "readathon/internal/services/resync/service"

	journaldomain "readathon/internal/services/journal/domain"
	memberdomain "readathon/internal/services/members/domain"
	perioddomain "readathon/internal/services/periods/domain"
	scoringdomain "readathon/internal/services/scoring/domain"
)

// Ports exposed by the resync module
type Ports struct {
	Runner domain.RunnerPort
	Status domain.StatusPort
}

// Module implements the resync service module
type Module struct {
	name     string
	prefix   string
	mws      []func(http.Handler) http.Handler
	ports    Ports
	register func(httpkit.Router)
}

// New constructs the resync module from the row source and the service ports
func New(
	deps modkit.Deps,
	source sheetrow.Fetcher,
	members memberdomain.QueryPort,
	periods perioddomain.QueryPort,
	journal journaldomain.WriterPort,
	scoring scoringdomain.RecomputePort,
	opts ...modkit.Option,
) *Module {
	built := modkit.Build(append([]modkit.Option{
		modkit.WithName("resync"),
		modkit.WithPrefix("/resync"),
	}, opts...)...)

	svc := resyncsvc.New(source, members, periods, journal, scoring, flagvocab.Default())
	extra := built.Register

	return &Module{
		name:   built.Name,
		prefix: built.Prefix,
		mws:    built.Mw,
		ports:  Ports{Runner: svc, Status: svc},
		register: func(r httpkit.Router) {
			resynchttp.Register(r, svc)
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
