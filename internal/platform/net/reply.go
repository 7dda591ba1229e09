package net

import (
	"net/http"

	perr "readathon/internal/platform/errors"
)

// Wire is the envelope middleware writes when it must answer for a handler,
// shaped to match the regular response envelope
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	RequestID  string         `json:"request_id,omitempty"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// Error builds an envelope from err's code and message. A nil err is a 200
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		return OK(nil, reqID)
	}

	status := perr.HTTPStatus(err)
	wire := perr.WireFrom(err)
	body := Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       wire.Code,
		Error:      wire.Message,
		RequestID:  reqID,
	}
	return status, body
}

// OK builds the success envelope
func OK(data any, reqID string) (int, Wire) {
	body := Wire{
		StatusCode: http.StatusOK,
		Status:     http.StatusText(http.StatusOK),
		RequestID:  reqID,
		Data:       data,
	}
	return http.StatusOK, body
}
