package inspect

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/rickgorman/clipstty-check/internal/ui"
	"github.com/rickgorman/clipstty-check/pkg/hash"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// Plain renders the report without colors and returns the text.
func Plain(r *Report) string {
	return ui.Plain(func() { Render(r) })
}

// Digest fingerprints the plain report. Two runs over an unchanged tree
// on the same date produce the same digest.
func Digest(r *Report) string {
	return hash.ReportDigest(Plain(r))
}

// CopyToClipboard puts the plain report on the system clipboard.
func CopyToClipboard(r *Report) error {
	if err := writeClipboard(Plain(r)); err != nil {
		return fmt.Errorf("failed to copy report to clipboard: %w", err)
	}
	return nil
}
