package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	pnet "readathon/internal/platform/net"
	kit "readathon/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]string{
		"trace":         "trace",
		"debug":         "debug",
		"info":          "info",
		"warn":          "warn",
		"warning":       "warn",
		"error":         "error",
		"fatal":         "fatal",
		"panic":         "panic",
		"":              "debug",
		"  gibberish  ": "debug",
	} {
		if got := parseLevel(in); strings.ToLower(got.String()) != want {
			t.Fatalf("parseLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

// Init runs under a sync.Once, so one test drives the whole root surface.
func TestRootAndChildren(t *testing.T) {
	var buf bytes.Buffer

	Init(Options{
		Level:        "info",
		Format:       "console",
		Service:      "reader",
		Writer:       &buf,
		WithCaller:   true,
		SampleEvery:  2,
		StaticFields: map[string]string{"build": "dev"},
	})

	// Sampling every 2nd line would swallow half the assertions, so each
	// child is re-sampled down to every line before emitting.
	every := func(l *Logger) *Logger {
		v := l.Sample(&zerolog.BasicSampler{N: 1})
		return &v
	}

	every(Get()).Info().Msg("root line")
	every(Named("sync")).Info().Msg("named line")

	ctx := pnet.WithRequest(context.Background(), "req-77", "club-9")
	every(C(ctx)).Info().Msg("scoped line")
	every(C(context.Background())).Info().Msg("bare line")

	out := buf.String()
	for _, want := range []string{
		"root line", "named line", "scoped line", "bare line",
		"component=", "sync",
		"request_id=", "req-77",
		"tenant_id=", "club-9",
		"service=", "reader",
		"build=", "dev",
	} {
		kit.MustContain(t, out, want)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_SERVICE", "reader")
	t.Setenv("LOG_CALLER", "true")
	t.Setenv("LOG_SAMPLE_EVERY", "3")

	opt := FromEnv()
	if opt.Level != "warn" || opt.Format != "json" || opt.Service != "reader" {
		t.Fatalf("FromEnv mismatch: %+v", opt)
	}
	if !opt.WithCaller || opt.SampleEvery != 3 {
		t.Fatalf("FromEnv caller/sample mismatch: %+v", opt)
	}
}
