// Package http provides the operator endpoints for the sync engine
package http

import (
	stdhttp "net/http"

	"readathon/internal/modkit/httpkit"
	svc "readathon/internal/services/resync/service"
)

// Register mounts sync endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Post(r, "/run", h.run)
	httpkit.Get(r, "/status", h.status)
}

type handlers struct{ svc svc.Service }

// @Summary Trigger a full sync pass
// @Tags Resync
// @Produce json
// @Success 200 {object} domain.Report "ok"
// @Router /resync/run [post]
func (h *handlers) run(r *stdhttp.Request) (any, error) {
	return h.svc.Run(r.Context())
}

// @Summary Sync engine status
// @Tags Resync
// @Produce json
// @Success 200 {object} domain.Status "ok"
// @Router /resync/status [get]
func (h *handlers) status(r *stdhttp.Request) (any, error) {
	return h.svc.Status(r.Context()), nil
}
