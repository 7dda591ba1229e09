// Package http provides http transport for the reading schedule
package http

import (
	stdhttp "net/http"

	"readathon/internal/modkit/httpkit"
	phttp "readathon/internal/platform/net/http"
	"readathon/internal/services/periods/domain"
	svc "readathon/internal/services/periods/service"
)

// Register mounts schedule endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/list", h.list)
	httpkit.PostJSON[domain.CreateInput](r, "/create", h.create)
	httpkit.PostJSON[domain.DeleteInput](r, "/delete", h.delete)
	httpkit.Get(r, "/rules/default", h.defaultRules)
	httpkit.PostJSON[domain.RuleSet](r, "/rules/default", h.putDefaultRules)
}

type handlers struct{ svc svc.Service }

// @Summary List periods
// @Tags Periods
// @Produce json
// @Success 200 {array} domain.Period "ok"
// @Router /periods/list [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context())
}

// @Summary Schedule a period
// @Tags Periods
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Period"
// @Success 201 {object} domain.Period "created"
// @Router /periods/create [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	p, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return phttp.Created(p), nil
}

// @Summary Delete a period
// @Tags Periods
// @Accept json
// @Produce json
// @Param payload body domain.DeleteInput true "Period id"
// @Success 200 {object} any "ok"
// @Router /periods/delete [post]
func (h *handlers) delete(r *stdhttp.Request, in domain.DeleteInput) (any, error) {
	return nil, h.svc.Delete(r.Context(), in)
}

// @Summary Get default scoring rules
// @Tags Periods
// @Produce json
// @Success 200 {object} domain.RuleSet "ok"
// @Router /periods/rules/default [get]
func (h *handlers) defaultRules(r *stdhttp.Request) (any, error) {
	return h.svc.DefaultRules(r.Context())
}

// @Summary Set default scoring rules
// @Tags Periods
// @Accept json
// @Produce json
// @Param payload body domain.RuleSet true "Rules"
// @Success 200 {object} any "ok"
// @Router /periods/rules/default [post]
func (h *handlers) putDefaultRules(r *stdhttp.Request, in domain.RuleSet) (any, error) {
	return nil, h.svc.PutDefaultRules(r.Context(), in)
}
