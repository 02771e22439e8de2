package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestConfigRedirectsDefaultLogger(t *testing.T) {
	var buf bytes.Buffer

	prev := Default()
	defer func() {
		defaultMu.Lock()
		defaultLog = prev
		defaultMu.Unlock()
	}()

	Config(WithOutput(&buf), WithFormat(FormatJSON), WithLevel(LevelDebug))

	Debug("through default", slog.String("k", "v"))
	Info("also through default")

	out := buf.String()
	if !strings.Contains(out, "through default") {
		t.Errorf("default logger did not receive records: %q", out)
	}

	if !strings.Contains(out, `"k":"v"`) {
		t.Errorf("attribute missing: %q", out)
	}
}

func TestWithDerivesFromDefault(t *testing.T) {
	var buf bytes.Buffer

	prev := Default()
	defer func() {
		defaultMu.Lock()
		defaultLog = prev
		defaultMu.Unlock()
	}()

	Config(WithOutput(&buf), WithFormat(FormatJSON))

	With(slog.String("stage", "layout")).Info("tagged")

	if !strings.Contains(buf.String(), `"stage":"layout"`) {
		t.Errorf("derived attribute missing: %q", buf.String())
	}
}
