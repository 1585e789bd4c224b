package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("expected output 'stderr', got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp to default to true")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid json", Config{Level: "debug", Format: "json"}, false},
		{"valid console", Config{Level: "info", Format: "console"}, false},
		{"bad level", Config{Level: "verbose", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "pretty"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestJSONOutputContainsFields(t *testing.T) {
	l := New(&Config{Level: "debug", Format: "json", Output: "stderr"})

	var buf bytes.Buffer
	zl := l.GetLogger().Output(&buf)
	zl.Info().Str(FieldUnit, "alpha").Msg("unit finished")

	out := buf.String()
	if !strings.Contains(out, `"unit":"alpha"`) {
		t.Errorf("expected unit field in output, got %q", out)
	}
	if !strings.Contains(out, "unit finished") {
		t.Errorf("expected message in output, got %q", out)
	}
}

func TestWithComponent(t *testing.T) {
	l := New(&Config{Level: "debug", Format: "json", Output: "stderr"})

	var buf bytes.Buffer
	tagged := &Logger{logger: l.WithComponent("runner").GetLogger().Output(&buf)}
	tagged.Info("hello")

	if !strings.Contains(buf.String(), `"component":"runner"`) {
		t.Errorf("expected component field, got %q", buf.String())
	}
}

func TestFields(t *testing.T) {
	m := Fields(FieldUnit, "alpha", FieldStatus, "succeeded")
	if m[FieldUnit] != "alpha" {
		t.Errorf("expected unit=alpha, got %v", m[FieldUnit])
	}
	if m[FieldStatus] != "succeeded" {
		t.Errorf("expected status=succeeded, got %v", m[FieldStatus])
	}

	// Odd trailing value is dropped.
	m = Fields(FieldUnit, "alpha", "dangling")
	if len(m) != 1 {
		t.Errorf("expected 1 entry, got %d", len(m))
	}
}

func TestDurationFields(t *testing.T) {
	m := DurationFields("run_all", 1500*time.Millisecond)
	if m[FieldDuration] != int64(1500) {
		t.Errorf("expected 1500ms, got %v", m[FieldDuration])
	}
}

func TestRegistryGetFallback(t *testing.T) {
	// Unregistered names fall back to the global logger with a component tag.
	l := Get("never-registered")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestRegistryGetRegistered(t *testing.T) {
	custom := NewDefault()
	Register("custom", custom)

	if got := Get("custom"); got != custom {
		t.Error("expected registered logger instance")
	}
}
