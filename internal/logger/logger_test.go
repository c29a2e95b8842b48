package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func reset() {
	SetLevel(LevelNormal)
	SetOutput(os.Stderr)
}

func TestSetLevel(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	SetLevel(LevelVerbose)
	Info("shown")
	if got := buf.String(); got != "[INFO] shown\n" {
		t.Errorf("unexpected output %q", got)
	}

	buf.Reset()
	SetLevel(LevelNormal)
	Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected info to be hidden at LevelNormal, got %q", buf.String())
	}
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelVerbose)

	Debug("block %d linked", 3)

	if got := buf.String(); got != "[DEBUG] block 3 linked\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestDebug_WhenNormal(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelNormal)

	Debug("hidden")
	Info("hidden")
	Section("hidden")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestWarn_Levels(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	SetLevel(LevelNormal)
	Warn("no code element in block %d", 1)
	if !strings.Contains(buf.String(), "[WARN] no code element in block 1") {
		t.Errorf("expected warning, got %q", buf.String())
	}

	buf.Reset()
	SetLevel(LevelQuiet)
	Warn("suppressed")
	if buf.Len() != 0 {
		t.Errorf("expected quiet mode to suppress warnings, got %q", buf.String())
	}
}

func TestSection_WhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelVerbose)

	Section("docs/index.html")

	if got := buf.String(); got != "\n=== docs/index.html ===\n" {
		t.Errorf("unexpected output %q", got)
	}
}
