package middleware

import (
	stdjson "encoding/json"
	stdhttp "net/http"
	"runtime/debug"
	"strings"

	perr "readathon/internal/platform/errors"
	"readathon/internal/platform/logger"
	pnet "readathon/internal/platform/net"
)

type panicWire struct {
	StatusCode int    `json:"status_code"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
}

// RecoverJSON turns a handler panic into a JSON 500. The stack goes to the
// log together with the request id, which is also mirrored on the response
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			answerPanic(w, r, v)
		}()
		next.ServeHTTP(w, r)
	})
}

func answerPanic(w stdhttp.ResponseWriter, r *stdhttp.Request, v any) {
	reqID := pnet.RequestID(r.Context())

	stack := strings.Join(strings.Split(string(debug.Stack()), "\n"), "\n\t")
	logger.C(r.Context()).Error().
		Str("request_id", reqID).
		Interface("panic", v).
		Msgf("panic recovered\n%s", stack)

	if reqID != "" {
		w.Header().Set("X-Request-ID", reqID)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(stdhttp.StatusInternalServerError)

	_ = stdjson.NewEncoder(w).Encode(panicWire{
		StatusCode: stdhttp.StatusInternalServerError,
		Status:     stdhttp.StatusText(stdhttp.StatusInternalServerError),
		Error:      perr.Root(perr.PanicErrf("panic recovered")).Error(),
		RequestID:  reqID,
	})
}
