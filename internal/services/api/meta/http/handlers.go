// Package http mounts the health, readiness and version endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"readathon/internal/core/flagvocab"
	"readathon/internal/core/version"
	"readathon/internal/modkit/httpkit"
)

// Pinger matches any adapter that can answer a liveness ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Deps carries what the meta endpoints need from the composition root
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	PG          any
}

type endpoints struct {
	deps Deps
}

// Register mounts the three meta routes on r
func Register(r httpkit.Router, d Deps) {
	ep := &endpoints{deps: d}

	httpkit.Get(r, "/health", ep.health)
	httpkit.Get(r, "/ready", ep.ready)
	httpkit.Get(r, "/version", ep.version)
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"readathon-api"`
	Started string `json:"started"  example:"2026-01-03T13:00:00Z"`
	Now     string `json:"now"      example:"2026-01-03T13:05:00Z"`
}

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (ep *endpoints) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: ep.deps.ServiceName,
		Started: stamp(ep.deps.StartedAt),
		Now:     stamp(time.Now()),
	}, nil
}

// ReadyCheck reports one dependency's readiness
type ReadyCheck struct {
	Name   string `json:"name"   example:"pg"`
	Status string `json:"status" example:"ok"` // ok fail skipped unknown
	Error  string `json:"error,omitempty"`
}

// ReadyResponse aggregates the dependency checks
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-01-03T13:05:00Z"`
}

func checkDep(ctx stdctx.Context, name string, dep any) ReadyCheck {
	switch p := dep.(type) {
	case nil:
		return ReadyCheck{Name: name, Status: "skipped"}
	case Pinger:
		if err := p.Ping(ctx); err != nil {
			return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
		}
		return ReadyCheck{Name: name, Status: "ok"}
	default:
		return ReadyCheck{Name: name, Status: "unknown"}
	}
}

// @Summary Readiness with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (ep *endpoints) ready(_ *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(stdctx.Background(), 2*time.Second)
	defer cancel()

	pg := checkDep(ctx, "pg", ep.deps.PG)

	status := "ok"
	if pg.Status == "fail" {
		status = "fail"
	}
	return ReadyResponse{
		Status: status,
		Checks: []ReadyCheck{pg},
		Now:    stamp(time.Now()),
	}, nil
}

// VersionResponse reports build and vocabulary versions
type VersionResponse struct {
	Build        version.BuildInfo `json:"build"`
	VocabVersion int               `json:"vocab_version" example:"1"`
}

// @Summary Build and vocabulary versions
// @Tags Meta
// @Produce json
// @Success 200 {object} VersionResponse "ok"
// @Router /meta/version [get]
func (ep *endpoints) version(_ *http.Request) (any, error) {
	return VersionResponse{
		Build:        version.Info(),
		VocabVersion: flagvocab.Default().Version(),
	}, nil
}
