package oasnorm

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNopLogger(t *testing.T) {
	var logger Logger = NopLogger{}

	// Must accept every call without effect.
	logger.Debug("debug", "k", "v")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	if _, ok := logger.With("k", "v").(NopLogger); !ok {
		t.Error("With() should return a NopLogger")
	}
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlogAdapter(slog.New(handler))

	logger.Warn("scope matched no nodes", "scope", "$.paths")

	out := buf.String()
	if !strings.Contains(out, "scope matched no nodes") {
		t.Errorf("output %q missing message", out)
	}
	if !strings.Contains(out, "scope=$.paths") {
		t.Errorf("output %q missing attribute", out)
	}

	buf.Reset()
	child := logger.With("component", "deref")
	child.Info("resolved")
	out = buf.String()
	if !strings.Contains(out, "component=deref") {
		t.Errorf("output %q missing With attribute", out)
	}
}

func TestNewSlogAdapterNil(t *testing.T) {
	if NewSlogAdapter(nil) == nil {
		t.Error("NewSlogAdapter(nil) should fall back to slog.Default()")
	}
}
