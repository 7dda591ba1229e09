package middleware

import (
	"net/http"
	"time"

	pstrings "readathon/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Mw is the shape every wrapper returns
type Mw = func(http.Handler) http.Handler

// Thin adapters over chi middleware so modules never import chi types
// directly.

// RequestID propagates or mints X-Request-ID and stores it on context
func RequestID() Mw { return chimw.RequestID }

// RealIP rewrites RemoteAddr from X-Forwarded-For style headers
func RealIP() Mw { return chimw.RealIP }

// Timeout cancels the request context once d elapses
func Timeout(d time.Duration) Mw { return chimw.Timeout(d) }

// NoCache sets headers that disable client and proxy caching
func NoCache() Mw { return chimw.NoCache }

// RedirectSlashes sends /clubs/ to /clubs
func RedirectSlashes() Mw { return chimw.RedirectSlashes }

// StripSlashes drops a trailing slash before routing
func StripSlashes() Mw { return chimw.StripSlashes }

// Heartbeat answers 200 OK on GET path for load balancer checks
func Heartbeat(path string) Mw { return chimw.Heartbeat(path) }

// Compress wraps chi's compressor
func Compress(level int) Mw {
	c := chimw.NewCompressor(level)
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}

// CORSOptions is the narrow surface we expose over go-chi/cors
type CORSOptions struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	ExposedHeaders []string

	AllowCredentials bool
	MaxAge           int
}

var (
	defaultCORSMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	defaultCORSHeaders = []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"}
)

// CORS wraps go-chi/cors, filling empty method and header lists with the
// usual JSON API set
func CORS(opt CORSOptions) Mw {
	return chicors.Handler(chicors.Options{
		AllowedOrigins:   opt.AllowedOrigins,
		AllowedMethods:   pstrings.IfEmpty(opt.AllowedMethods, defaultCORSMethods),
		AllowedHeaders:   pstrings.IfEmpty(opt.AllowedHeaders, defaultCORSHeaders),
		ExposedHeaders:   opt.ExposedHeaders,
		AllowCredentials: opt.AllowCredentials,
		MaxAge:           opt.MaxAge,
	})
}
