// Package swaggerkit mounts Swagger UI and serves the OpenAPI document.
// doc.json is maintained by hand and embedded; no generator runs
package swaggerkit

import (
	_ "embed"
	"encoding/json"
	"net/http"

	phttp "readathon/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

//go:embed doc.json
var docJSON []byte

// SpecMutator lets modules tweak the parsed spec before it is served
type SpecMutator func(map[string]any)

var mutators []SpecMutator

// Register adds a spec mutator; call from module init so it is wired automatically
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")

		if len(mutators) == 0 {
			_, _ = w.Write(docJSON)
			return
		}
		var spec map[string]any
		if err := json.Unmarshal(docJSON, &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		for _, m := range mutators {
			m(spec)
		}
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// Mount the Swagger UI and JSON spec if enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON())
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
