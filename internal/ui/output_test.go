package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func withBuffer(t *testing.T) *bytes.Buffer {
	t.Helper()
	prevOut, prevNoColor := Out, color.NoColor
	t.Cleanup(func() {
		Out = prevOut
		color.NoColor = prevNoColor
	})

	var buf bytes.Buffer
	Out = &buf
	color.NoColor = true
	return &buf
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name  string
		print func()
		want  string
	}{
		{"info", func() { Info("Data directory: %s", "/tmp/x") }, "  → Data directory: /tmp/x\n"},
		{"success", func() { Success("exists") }, "  ✔ exists\n"},
		{"fail", func() { Fail("missing %d", 2) }, "  ✘ missing 2\n"},
		{"warn", func() { Warn("careful") }, "  ○ careful\n"},
		{"item", func() { Item("%s (%d bytes)", "a.wav", 10) }, "     - a.wav (10 bytes)\n"},
		{"dim", func() { DimMsg("hint") }, "  hint\n"},
		{"blank", BlankLine, "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := withBuffer(t)
			tt.print()
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeaderFooterWidth(t *testing.T) {
	buf := withBuffer(t)
	Header()
	Footer()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], Title) {
		t.Errorf("header %q does not contain %q", lines[0], Title)
	}
	if h, f := len([]rune(lines[0])), len([]rune(lines[1])); h != f {
		t.Errorf("header width %d != footer width %d", h, f)
	}
}

func TestPlainRestoresState(t *testing.T) {
	var outer bytes.Buffer
	prevOut, prevNoColor := Out, color.NoColor
	t.Cleanup(func() {
		Out = prevOut
		color.NoColor = prevNoColor
	})
	Out = &outer
	color.NoColor = false

	got := Plain(func() { Success("captured") })

	if got != "  ✔ captured\n" {
		t.Errorf("Plain() = %q", got)
	}
	if outer.Len() != 0 {
		t.Errorf("Plain() leaked %q to the previous writer", outer.String())
	}
	if Out != &outer {
		t.Error("Plain() did not restore Out")
	}
	if color.NoColor {
		t.Error("Plain() did not restore color setting")
	}
}
