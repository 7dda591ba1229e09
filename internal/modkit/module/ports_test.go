package module

import (
	"strings"
	"testing"

	phttp "readathon/internal/platform/net/http"
)

type counterPort interface {
	Count() int
}

type counter struct{ n int }

func (c counter) Count() int { return c.n }

type fakeModule struct {
	name    string
	ports   any
	mounted bool
}

func (m *fakeModule) Name() string             { return m.name }
func (m *fakeModule) Ports() any               { return m.ports }
func (m *fakeModule) MountRoutes(phttp.Router) { m.mounted = true }

var _ Module = (*fakeModule)(nil)

func TestPortsOf(t *testing.T) {
	t.Parallel()

	type bundle struct {
		Query counterPort
		Extra int
	}
	type hidden struct {
		query counterPort
	}

	cases := []struct {
		name  string
		ports any
		want  int
		ok    bool
	}{
		{"nil ports", nil, 0, false},
		{"direct match", counterPort(counter{n: 42}), 42, true},
		{"exported struct field", bundle{Query: counter{n: 7}, Extra: 1}, 7, true},
		{"unexported field invisible", hidden{query: counter{n: 1}}, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PortsOf[counterPort](&fakeModule{name: "x", ports: tc.ports})
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && got.Count() != tc.want {
				t.Fatalf("Count = %d, want %d", got.Count(), tc.want)
			}
		})
	}
}

func TestMustPortsOfPanicsWithModuleName(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		msg, _ := r.(string)
		if !strings.Contains(msg, "journal") || !strings.Contains(msg, "not found") {
			t.Fatalf("panic = %q", msg)
		}
	}()
	_ = MustPortsOf[counterPort](&fakeModule{name: "journal"})
}

func TestMustPortsOfReturnsValue(t *testing.T) {
	t.Parallel()

	m := &fakeModule{name: "scoring", ports: counterPort(counter{n: 99})}
	if got := MustPortsOf[counterPort](m); got.Count() != 99 {
		t.Fatalf("Count = %d", got.Count())
	}
}

func TestModuleContract(t *testing.T) {
	t.Parallel()

	m := &fakeModule{name: "meta"}
	m.MountRoutes(nil)
	if !m.mounted {
		t.Fatal("MountRoutes not observed")
	}
	if m.Name() != "meta" || m.Ports() != nil {
		t.Fatalf("contract mismatch: name=%q ports=%v", m.Name(), m.Ports())
	}
}
