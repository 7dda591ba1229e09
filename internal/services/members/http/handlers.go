// Package http provides http transport for the roster
package http

import (
	stdhttp "net/http"

	"readathon/internal/modkit/httpkit"
	phttp "readathon/internal/platform/net/http"
	"readathon/internal/services/members/domain"
	svc "readathon/internal/services/members/service"
)

// Register mounts roster endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.EnrollInput](r, "/enroll", h.enroll)
	httpkit.PostJSON[idInput](r, "/deactivate", h.deactivate)
	httpkit.PostJSON[idInput](r, "/reactivate", h.reactivate)
}

type handlers struct{ svc svc.Service }

type idInput struct {
	ID string `json:"id" validate:"required,uuid4"`
}

// @Summary List club members
// @Tags Members
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Filter"
// @Success 200 {array} domain.Member "ok"
// @Router /members/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// @Summary Enroll a member
// @Tags Members
// @Accept json
// @Produce json
// @Param payload body domain.EnrollInput true "Member"
// @Success 201 {object} domain.Member "created"
// @Router /members/enroll [post]
func (h *handlers) enroll(r *stdhttp.Request, in domain.EnrollInput) (any, error) {
	m, err := h.svc.Enroll(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return phttp.Created(m), nil
}

// @Summary Deactivate a member
// @Tags Members
// @Accept json
// @Produce json
// @Param payload body idInput true "Member id"
// @Success 200 {object} any "ok"
// @Router /members/deactivate [post]
func (h *handlers) deactivate(r *stdhttp.Request, in idInput) (any, error) {
	return nil, h.svc.Deactivate(r.Context(), in.ID)
}

// @Summary Reactivate a member
// @Tags Members
// @Accept json
// @Produce json
// @Param payload body idInput true "Member id"
// @Success 200 {object} any "ok"
// @Router /members/reactivate [post]
func (h *handlers) reactivate(r *stdhttp.Request, in idInput) (any, error) {
	return nil, h.svc.Reactivate(r.Context(), in.ID)
}
