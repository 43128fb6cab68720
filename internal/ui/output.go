// Package ui provides user interface utilities for formatted terminal output.
package ui

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

const (
	BoxWidth = 52
	Title    = "clipstty·check"
)

var (
	// Color/style functions
	Bold   = color.New(color.Bold).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()

	// Output destination for the report
	Out io.Writer = os.Stdout
)

// SetColor enables or disables ANSI styling for all output.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

// Header prints the top border with "clipstty·check" branding.
func Header() {
	border := strings.Repeat("─", BoxWidth-len([]rune(Title))-3)
	fmt.Fprintf(Out, "  %s %s %s\n", Dim("┌"), Bold(Title), Dim(border))
}

// Footer prints the bottom border.
func Footer() {
	border := strings.Repeat("─", BoxWidth-1)
	fmt.Fprintf(Out, "  %s\n", Dim("└"+border))
}

// Info prints an informational message with a cyan arrow.
func Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Cyan("→"), msg)
}

// Success prints a success message with a green checkmark.
func Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Green("✔"), msg)
}

// Fail prints an error message with a red X.
func Fail(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Red("✘"), msg)
}

// Warn prints a warning message with a yellow circle.
func Warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Yellow("○"), msg)
}

// Item prints an indented list entry.
func Item(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "     - %s\n", msg)
}

// DimMsg prints a dimmed message.
func DimMsg(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s\n", Dim(msg))
}

// BlankLine prints a blank line.
func BlankLine() {
	fmt.Fprintln(Out, "")
}

// Plain runs fn with colors disabled and output captured, and returns
// what fn printed. Out and the color setting are restored afterwards.
func Plain(fn func()) string {
	prevOut, prevNoColor := Out, color.NoColor
	defer func() {
		Out = prevOut
		color.NoColor = prevNoColor
	}()

	var buf bytes.Buffer
	Out = &buf
	color.NoColor = true
	fn()
	return buf.String()
}
