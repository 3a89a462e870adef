// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, formatters, derived loggers, error
//              logging and timers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/stringy/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: format, Output: buf}), buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" WARN ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"off", LevelOff, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v; wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v; want %v", tt.input, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered entries: %q", out)
	}
	if !strings.Contains(out, "[WRN] shown") {
		t.Errorf("output = %q; want warn entry", out)
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("Discard logger must not enable any level")
	}
	logger.Error("nothing")
}

func TestTextFormatterSortedFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)
	logger = logger.WithName("utf8x")

	logger.Debug("backend initialized", Fields{"b": 2, "a": 1})

	out := buf.String()
	if !strings.Contains(out, "{utf8x} backend initialized [a=1 b=2]") {
		t.Errorf("output = %q", out)
	}
}

func TestJSONFormatter(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)
	logger = logger.WithField("component", "cli")

	logger.Info("applied", String("op", "slugify"), Int("count", 3))

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v; output %q", err, buf.String())
	}

	if decoded["message"] != "applied" || decoded["op"] != "slugify" || decoded["component"] != "cli" {
		t.Errorf("decoded = %v", decoded)
	}
	if decoded["count"] != float64(3) {
		t.Errorf("count = %v; want 3", decoded["count"])
	}
}

func TestDerivedLoggersAreIndependent(t *testing.T) {
	base, buf := newBufferLogger(LevelInfo, FormatText)
	child := base.WithField("child", true).WithLevel(LevelError)

	base.Info("from base")
	child.Info("from child")

	out := buf.String()
	if !strings.Contains(out, "from base") || strings.Contains(out, "from child") {
		t.Errorf("output = %q", out)
	}
	if strings.Contains(out, "child=true") {
		t.Error("base logger picked up child field")
	}
}

func TestLogErrorUsesSeverity(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace, FormatText)

	logger.LogError(mdwerror.New("bad pad type").WithCode(mdwerror.CodeInvalidInput))
	logger.LogError(mdwerror.New("cipher failed").WithCode(mdwerror.CodeBackendError))
	logger.LogError(errors.New("plain"))
	logger.LogError(nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines; want 3: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "[INF]") || !strings.Contains(lines[0], "error_code=INVALID_INPUT") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "[ERR]") {
		t.Errorf("line 1 = %q", lines[1])
	}
	if !strings.Contains(lines[2], "[ERR] plain") {
		t.Errorf("line 2 = %q", lines[2])
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)

	timer := logger.StartTimer("chain").WithField("ops", 2)
	time.Sleep(time.Millisecond)
	elapsed := timer.Stop()

	if elapsed <= 0 {
		t.Errorf("Stop() = %v; want > 0", elapsed)
	}
	if timer.Stop() != 0 {
		t.Error("second Stop() must return 0")
	}

	out := buf.String()
	if !strings.Contains(out, "chain completed") || !strings.Contains(out, "duration=") || !strings.Contains(out, "ops=2") {
		t.Errorf("output = %q", out)
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)

	logger.StartTimer("decrypt").StopWithError(errors.New("mac mismatch"))

	if !strings.Contains(buf.String(), `decrypt failed`) || !strings.Contains(buf.String(), `error="mac mismatch"`) {
		t.Errorf("output = %q", buf.String())
	}
}
