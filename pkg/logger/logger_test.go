package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// The value Init returns must be directly usable for leveled events,
// including in the bootstrap path before config is loaded.
func TestInit_ReturnsUsableLogger(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	log := Init(Options{Level: "info", Output: &buf})
	log.Error().Str("stage", "boot").Msg("configuration failed")

	out := buf.String()
	if !strings.Contains(out, `"configuration failed"`) {
		t.Fatalf("expected event message in output, got %s", out)
	}
	if !strings.Contains(out, `"service":"coffee-registry"`) {
		t.Fatalf("expected default service field, got %s", out)
	}
	if !strings.Contains(out, `"stage":"boot"`) {
		t.Fatalf("expected structured field, got %s", out)
	}
}

func TestInit_Singleton(t *testing.T) {
	Reset()
	defer Reset()

	var first bytes.Buffer
	Init(Options{Level: "debug", Output: &first})

	// second Init must not rebuild; output still goes to the first writer
	var second bytes.Buffer
	log := Init(Options{Level: "error", Output: &second})
	log.Info().Msg("routed")

	if !strings.Contains(first.String(), "routed") {
		t.Fatalf("expected event on first writer, got %q / %q", first.String(), second.String())
	}
	if second.Len() != 0 {
		t.Fatalf("second writer should receive nothing, got %s", second.String())
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	defer Reset()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected Get to panic before Init")
		}
	}()
	Get()
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"WARN":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		" error ": zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
