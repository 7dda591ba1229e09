package domain

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveInclusiveBounds(t *testing.T) {
	p := Period{ID: "p1", Start: day(2026, 1, 10), End: day(2026, 1, 20)}
	ps := []Period{p}

	cases := []struct {
		d  time.Time
		ok bool
	}{
		{day(2026, 1, 9), false},
		{day(2026, 1, 10), true}, // first day counts
		{day(2026, 1, 15), true},
		{day(2026, 1, 20), true}, // last day counts
		{day(2026, 1, 21), false},
	}
	for _, c := range cases {
		got, ok := Resolve(c.d, ps)
		if ok != c.ok {
			t.Fatalf("Resolve(%s) ok = %v, want %v", c.d.Format("2006-01-02"), ok, c.ok)
		}
		if ok && got.ID != "p1" {
			t.Fatalf("Resolve(%s) = %q", c.d.Format("2006-01-02"), got.ID)
		}
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	ps := []Period{
		{ID: "a", Start: day(2026, 1, 1), End: day(2026, 1, 31)},
		{ID: "b", Start: day(2026, 1, 15), End: day(2026, 2, 15)},
	}
	got, ok := Resolve(day(2026, 1, 20), ps)
	if !ok || got.ID != "a" {
		t.Fatalf("got %q ok=%v, want a", got.ID, ok)
	}
}

func TestResolveNoPeriod(t *testing.T) {
	if _, ok := Resolve(day(2026, 3, 1), nil); ok {
		t.Fatal("empty schedule must not resolve")
	}
}

func TestOverlaps(t *testing.T) {
	a := Period{Start: day(2026, 1, 1), End: day(2026, 1, 31)}
	cases := []struct {
		b    Period
		want bool
	}{
		{Period{Start: day(2026, 2, 1), End: day(2026, 2, 28)}, false},
		{Period{Start: day(2026, 1, 31), End: day(2026, 2, 28)}, true}, // shared edge day
		{Period{Start: day(2025, 12, 1), End: day(2026, 1, 1)}, true},
		{Period{Start: day(2026, 1, 10), End: day(2026, 1, 12)}, true},
	}
	for i, c := range cases {
		if got := a.Overlaps(c.b); got != c.want {
			t.Fatalf("case %d: Overlaps = %v, want %v", i, got, c.want)
		}
		if got := c.b.Overlaps(a); got != c.want {
			t.Fatalf("case %d: Overlaps not symmetric", i)
		}
	}
}
