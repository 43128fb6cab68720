// Package ui provides terminal output formatting for clipstty-check.
//
// This package handles all user-facing output with consistent styling:
//   - Colored status glyphs (cyan, green, red, yellow)
//   - Headers and footers with box-drawing characters
//   - Info, success, failure, and warning messages
//   - Indented list items for directory listings
//   - Dimmed text for secondary information
//
// All output goes to ui.Out (defaults to os.Stdout) to allow
// testing and output redirection. Plain captures output with
// colors disabled, which is what the report digest and clipboard
// export are computed from.
//
// Example usage:
//
//	ui.Header()
//	ui.Success("Sessions directory exists")
//	ui.Item("%s (%d bytes)", name, size)
//	ui.Footer()
//
// Output styling:
//   - Info:    → Cyan arrow
//   - Success: ✔ Green checkmark
//   - Fail:    ✘ Red X
//   - Warn:    ○ Yellow circle
//   - Item:    - plain dash, indented
package ui
