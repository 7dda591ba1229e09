// Package module exposes the journal ports; the journal has no routes of its
// own, it serves the sync engine and the scoring pass
package module

import (
	modkit "readathon/internal/modkit"
	"readathon/internal/modkit/httpkit"
	"readathon/internal/services/journal/domain"
	journalrepo "readathon/internal/services/journal/repo"
	journalsvc "readathon/internal/services/journal/service"
)

// Ports exposed by the journal module
type Ports struct {
	Writer domain.WriterPort
	Query  domain.QueryPort
}

// Module implements the journal service module
type Module struct {
	ports Ports
}

// New constructs a journal module
func New(deps modkit.Deps) *Module {
	svc := journalsvc.New(deps.PG, journalrepo.NewPG())
	return &Module{ports: Ports{Writer: svc, Query: svc}}
}

// Name satisfies the module contract
func (m *Module) Name() string { return "journal" }

// Ports satisfies the module contract
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies the module contract. The journal mounts nothing
func (m *Module) MountRoutes(httpkit.Router) {}
