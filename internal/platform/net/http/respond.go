// Package http provides the JSON envelope, router seam, and server runtime
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "readathon/internal/platform/errors"
	pnet "readathon/internal/platform/net"
)

// Response carries a handler's status and body until the adapter writes it
type Response struct {
	Status int
	Body   any
}

// OK returns a 200 response
func OK(data any) Response {
	return Response{Status: stdhttp.StatusOK, Body: data}
}

// Created returns a 201 response
func Created(data any) Response {
	return Response{Status: stdhttp.StatusCreated, Body: data}
}

// Error returns a response whose status and envelope derive from err
func Error(err error) Response {
	return Response{Body: err}
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

// Envelope is the response body every endpoint writes
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	reqID := pnet.RequestID(r.Context())

	// an error body decides its own status
	if err, ok := resp.Body.(error); ok && err != nil {
		status := perr.HTTPStatus(err)
		wire := perr.WireFrom(err)
		JSON(w, status, Envelope{
			StatusCode: status,
			Status:     stdhttp.StatusText(status),
			Code:       wire.Code,
			Error:      wire.Message,
			RequestID:  reqID,
		})
		return
	}

	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	JSON(w, status, Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		RequestID:  reqID,
		Data:       resp.Body,
	})
}
