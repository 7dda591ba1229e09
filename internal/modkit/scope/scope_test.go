package scope

import (
	"context"
	"testing"
)

func TestFromEmptyContext(t *testing.T) {
	t.Parallel()

	if s := From(context.Background()); s.Values == nil || len(s.Values) != 0 {
		t.Fatalf("expected empty usable map, got %v", s.Values)
	}
}

func TestWithMergesAndOverrides(t *testing.T) {
	t.Parallel()

	ctx := With(context.Background(), map[string]string{"club_id": "c1"})
	ctx = With(ctx, map[string]string{"request_id": "r1", "club_id": "c2"})

	got := From(ctx).Values
	if len(got) != 2 || got["club_id"] != "c2" || got["request_id"] != "r1" {
		t.Fatalf("scope = %v", got)
	}
}

func TestWithRepairsNilMap(t *testing.T) {
	t.Parallel()

	// a Scope with a nil map can only arrive through WithValue directly
	ctx := context.WithValue(context.Background(), key{}, Scope{})
	ctx = With(ctx, map[string]string{"club_id": "c1"})

	if got, ok := Get(ctx, "club_id"); !ok || got != "c1" {
		t.Fatalf("Get = %q ok=%v", got, ok)
	}
}

func TestGetHitAndMiss(t *testing.T) {
	t.Parallel()

	ctx := With(context.Background(), map[string]string{"club_id": "c1"})

	if v, ok := Get(ctx, "club_id"); !ok || v != "c1" {
		t.Fatalf("Get = %q ok=%v", v, ok)
	}
	if v, ok := Get(ctx, "missing"); ok {
		t.Fatalf("missing key returned %q", v)
	}
}
