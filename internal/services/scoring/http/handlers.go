// Package http provides http transport for standings
package http

import (
	stdhttp "net/http"

	"readathon/internal/modkit/httpkit"
	svc "readathon/internal/services/scoring/service"
)

// Register mounts standings endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/leaderboard", h.leaderboard)
	httpkit.Get(r, "/group", h.group)
}

type handlers struct{ svc svc.Service }

// @Summary Member leaderboard
// @Tags Stats
// @Produce json
// @Success 200 {array} domain.MemberStats "ok"
// @Router /stats/leaderboard [get]
func (h *handlers) leaderboard(r *stdhttp.Request) (any, error) {
	return h.svc.Leaderboard(r.Context())
}

// @Summary Per-period group totals
// @Tags Stats
// @Produce json
// @Success 200 {array} domain.GroupStats "ok"
// @Router /stats/group [get]
func (h *handlers) group(r *stdhttp.Request) (any, error) {
	return h.svc.GroupSummary(r.Context())
}
