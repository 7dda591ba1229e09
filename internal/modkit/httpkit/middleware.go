package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"readathon/internal/platform/net/middleware"
)

const (
	slowRequestMark = 500 * time.Millisecond
	requestDeadline = 30 * time.Second
)

// CommonStack is the baseline middleware slice every mounted module gets.
// Tenancy scoping composes on top of it at mount time
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// correlation first, recovery before anything that can panic
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.AccessLog(middleware.AccessLogOptions{Slow: slowRequestMark}),
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.RedirectSlashes(),
		middleware.StripSlashes(),
		middleware.Timeout(requestDeadline),
	}
}
