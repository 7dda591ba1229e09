// Package middleware holds adapters and in house middlewares
package middleware

import (
	"net/http"
	"time"

	"readathon/internal/platform/logger"
)

// AccessLogOptions tunes the zerolog access log
type AccessLogOptions struct {
	// Slow promotes requests taking >= Slow to warn level, 0 disables
	Slow time.Duration
}

// AccessLog emits one structured line per request with method, path,
// status, elapsed time, and bytes written. It reads the request scoped
// logger so the line carries request and tenant ids when present
func AccessLog(opt AccessLogOptions) Mw {
	return func(next http.Handler) http.Handler {
		serve := func(w http.ResponseWriter, r *http.Request) {
			cw := &captureWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(cw, r)
			emit(r, cw, time.Since(start), opt.Slow)
		}
		return http.HandlerFunc(serve)
	}
}

func emit(r *http.Request, cw *captureWriter, elapsed, slow time.Duration) {
	log := logger.C(r.Context())

	evt := log.Info()
	if slow > 0 && elapsed >= slow {
		evt = log.Warn()
	}
	evt.Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", cw.status).
		Int("bytes", cw.bytes).
		Dur("elapsed", elapsed).
		Msg("request done")
}

// captureWriter records the status and byte count flowing through the
// wrapped ResponseWriter
type captureWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	n, err := cw.ResponseWriter.Write(b)
	if n > 0 {
		cw.bytes += n
	}
	return n, err
}
