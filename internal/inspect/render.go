package inspect

import (
	"fmt"
	"strings"

	"github.com/rickgorman/clipstty-check/internal/ui"
)

// Render prints the report through ui.
func Render(r *Report) {
	ui.Header()

	ui.Info("Data directory: %s", r.DataDir)
	ui.Info("Sessions directory: %s", r.SessionsDir)

	if r.DataDirExists {
		ui.Success("Data directory exists")
	} else {
		ui.Fail("Data directory does not exist")
	}

	if r.SessionsDirExists {
		ui.Success("Sessions directory exists")
		renderContents(r.SessionsContents)
		renderIndex(r)
	} else {
		ui.Fail("Sessions directory does not exist")
	}

	ui.BlankLine()
	ui.Info("Expected directory: %s", r.ExpectedDir)

	switch {
	case !r.ExpectedDirExists:
		ui.Warn("Expected directory does not exist yet")
		renderHint()
	case len(r.Files) == 0:
		ui.Warn("Directory exists but is empty")
		renderHint()
	default:
		ui.Success("Found %d %s:", len(r.Files), plural(len(r.Files), "file", "files"))
		for _, f := range r.Files {
			ui.Item("%s (%d bytes)%s", f.Name, f.Size, annotate(f))
		}
	}

	ui.Footer()
}

func renderContents(names []string) {
	if len(names) == 0 {
		ui.Info("Contents: (empty)")
		return
	}

	ui.Info("Contents (%d):", len(names))
	for _, name := range names {
		ui.Item("%s", name)
	}
}

func renderIndex(r *Report) {
	if r.IndexErr != nil {
		ui.Warn("Session index unreadable: %v", r.IndexErr)
		return
	}
	if r.Index == nil {
		return
	}

	ui.Info("Session index lists %d %s, %d started on %s",
		r.Index.Total, plural(r.Index.Total, "session", "sessions"),
		r.Index.Today, r.Date.Format("2006-01-02"))
	for _, path := range r.Index.Missing {
		ui.Warn("Indexed recording missing: %s", path)
	}
}

func renderHint() {
	ui.BlankLine()
	ui.DimMsg("To produce a session:")
	ui.DimMsg("  1. Say 'start recording test session'")
	ui.DimMsg("  2. Say 'stop recording'")
	ui.DimMsg("  3. Run clipstty-check again")
}

func annotate(f FileEntry) string {
	var notes []string
	if f.Kind != "" && f.Kind != KindOther {
		notes = append(notes, string(f.Kind))
	}
	if f.SessionID != "" {
		notes = append(notes, "session "+f.SessionID[:8])
	}
	if !f.RecordedAt.IsZero() {
		notes = append(notes, "recorded "+f.RecordedAt.Format("15:04:05"))
	}
	if len(notes) == 0 {
		return ""
	}
	return " " + ui.Dim(strings.Join(notes, ", "))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// Summary is a one-line description of the expected directory, printed by
// watch mode after each re-check.
func Summary(r *Report) string {
	switch {
	case !r.ExpectedDirExists:
		return "expected directory does not exist yet"
	case len(r.Files) == 0:
		return "expected directory is empty"
	}

	var total int64
	for _, f := range r.Files {
		total += f.Size
	}
	return fmt.Sprintf("%d %s, %d bytes", len(r.Files), plural(len(r.Files), "file", "files"), total)
}
