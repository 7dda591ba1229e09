package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"readathon/internal/platform/config"
	phttp "readathon/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestServerRunAndShutdown(t *testing.T) {
	t.Setenv("API_PORT", "127.0.0.1:0")

	tweaked := false
	srv := phttp.NewServer(config.New(), func(*chi.Mux) { tweaked = true })
	if !tweaked {
		t.Fatal("NewServer option never ran")
	}
	r := srv.Router()

	// chi requires middleware before routes
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Stamp", "yes")
			next.ServeHTTP(w, req)
		})
	})
	r.Group(func(sub phttp.Router) {
		sub.Get("/grouped", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, "ok")
		})
	})

	status := func(code int) phttp.Handler {
		return func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(code) }
	}
	r.Post("/m", status(http.StatusCreated))
	r.Put("/m", status(http.StatusAccepted))
	r.Patch("/m", status(http.StatusNoContent))
	r.Delete("/m", status(http.StatusOK))

	errc := make(chan error, 1)
	go func() { errc <- srv.Run(context.Background()) }()
	time.Sleep(25 * time.Millisecond)

	hit := func(verb, path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(verb, path, nil))
		return rec
	}

	if rec := hit(http.MethodGet, "/grouped"); rec.Code != http.StatusOK || rec.Header().Get("X-Stamp") != "yes" {
		t.Fatalf("grouped route: %d mw=%q", rec.Code, rec.Header().Get("X-Stamp"))
	}
	for verb, want := range map[string]int{
		http.MethodPost:   http.StatusCreated,
		http.MethodPut:    http.StatusAccepted,
		http.MethodPatch:  http.StatusNoContent,
		http.MethodDelete: http.StatusOK,
	} {
		if rec := hit(verb, "/m"); rec.Code != want {
			t.Fatalf("%s /m = %d, want %d", verb, rec.Code, want)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run returned %v after clean shutdown", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run never returned")
	}
}

func TestNewServerAddrFromEnv(t *testing.T) {
	t.Setenv("API_PORT", ":12345")

	if srv := phttp.NewServer(config.New()); srv.Addr() != ":12345" {
		t.Fatalf("addr = %q", srv.Addr())
	}
}

func TestServerRunListenError(t *testing.T) {
	t.Setenv("API_PORT", "127.0.0.1:abc")

	if err := phttp.NewServer(config.New()).Run(context.Background()); err == nil {
		t.Fatal("expected a listen error for a bad port")
	}
}
