package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func newBufferLogger(buf *bytes.Buffer, level slog.Level) Logger {
	h := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level})
	return &slogLogger{logger: slog.New(h)}
}

func TestLogLevels(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf, slog.LevelDebug)
	ctx := context.Background()

	l.Debug(ctx, "debug msg")
	l.Info(ctx, "info msg")
	l.Warn(ctx, "warn msg")
	l.Error(ctx, "error msg")

	out := buf.String()
	for _, want := range []string{"debug msg", "info msg", "warn msg", "error msg"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf, slog.LevelWarn)
	ctx := context.Background()

	l.Debug(ctx, "hidden debug")
	l.Info(ctx, "hidden info")
	l.Warn(ctx, "visible warn")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("low-level entries leaked: %q", out)
	}
	if !strings.Contains(out, "visible warn") {
		t.Errorf("warn entry missing: %q", out)
	}
}

func TestFields(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf, slog.LevelInfo)

	l.Info(context.Background(), "with fields",
		String("player", "Curry"),
		Int("k", 3),
		Bool("samePosition", true),
		Float64("distance", 1.5),
		Error(errors.New("boom")),
	)

	out := buf.String()
	for _, want := range []string{"player=Curry", "k=3", "samePosition=true", "distance=1.5", "error=boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q in %q", want, out)
		}
	}
}

func TestNamed(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf, slog.LevelInfo).Named("engine")

	l.Info(context.Background(), "named entry", String("key", "val"))

	if !strings.Contains(buf.String(), "engine.key=val") {
		t.Errorf("group prefix missing: %q", buf.String())
	}
}

func TestInitAndGet(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatal(err)
	}
	if Get() == nil {
		t.Fatal("Get returned nil after Init")
	}
	if Named("test") == nil {
		t.Fatal("Named returned nil")
	}
	if err := Sync(); err != nil {
		t.Fatal(err)
	}
}

func TestSetLevelString(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatal(err)
	}

	for _, level := range []string{"debug", "info", "warn", "warning", "error", "DEBUG", " info ", ""} {
		if err := SetLevelString(level); err != nil {
			t.Errorf("SetLevelString(%q) = %v", level, err)
		}
	}
	if err := SetLevelString("verbose"); err == nil {
		t.Error("expected error for unknown level")
	}
}
