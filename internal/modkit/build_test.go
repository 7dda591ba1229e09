package modkit

import (
	"net/http"
	"reflect"
	"testing"

	phttp "readathon/internal/platform/net/http"
)

func TestBuildDefaults(t *testing.T) {
	t.Parallel()

	b := Build()
	if b.Name != "" || b.Prefix != "" {
		t.Fatalf("zero options produced name=%q prefix=%q", b.Name, b.Prefix)
	}
	if len(b.Mw) != 0 {
		t.Fatalf("zero options produced %d middlewares", len(b.Mw))
	}
	if b.Register != nil {
		t.Fatal("zero options produced a Register hook")
	}
}

func TestBuildAppliesOptions(t *testing.T) {
	t.Parallel()

	fnPtr := func(f func(http.Handler) http.Handler) uintptr {
		return reflect.ValueOf(f).Pointer()
	}

	mwA := func(next http.Handler) http.Handler { return next }
	mwB := func(next http.Handler) http.Handler { return next }
	src := []func(http.Handler) http.Handler{mwA, mwB}

	registered := 0
	b := Build(
		WithName("journal"),
		WithPrefix("/journal"),
		WithMiddlewares(src...),
		WithRegister(func(phttp.Router) { registered++ }),
	)

	if b.Name != "journal" || b.Prefix != "/journal" {
		t.Fatalf("name=%q prefix=%q", b.Name, b.Prefix)
	}
	if len(b.Mw) != 2 || fnPtr(b.Mw[0]) != fnPtr(mwA) || fnPtr(b.Mw[1]) != fnPtr(mwB) {
		t.Fatal("middlewares not preserved in order")
	}

	// Built must hold its own copy of the middleware slice
	src[0] = func(next http.Handler) http.Handler { return next }
	if fnPtr(b.Mw[0]) != fnPtr(mwA) {
		t.Fatal("Built.Mw aliased the caller's slice")
	}

	b.Register(nil)
	if registered != 1 {
		t.Fatalf("Register ran %d times", registered)
	}
}

func TestMiddlewaresAccumulate(t *testing.T) {
	t.Parallel()

	mw := func(next http.Handler) http.Handler { return next }
	b := Build(WithMiddlewares(mw), WithMiddlewares(mw, mw))
	if len(b.Mw) != 3 {
		t.Fatalf("len(Mw) = %d, want 3", len(b.Mw))
	}
}
