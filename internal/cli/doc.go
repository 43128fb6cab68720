// Package cli provides command-line argument parsing for clipstty-check.
//
// This package converts command-line arguments into a structured Args
// type that the main application can use. Running with no arguments
// checks today's session directory under the current user's home.
//
// Supported flags include:
//   - --home DIR: Inspect another home directory
//   - --date YYYY-MM-DD: Inspect another day's session directory
//   - --watch: Keep running and re-check on every change
//   - --digest: Print a fingerprint of the report
//   - --copy: Copy the plain report to the clipboard
//   - --no-color: Disable colored output
//   - --verbose: Print debug logs to stderr
//
// Example usage:
//
//	args, err := cli.Parse(os.Args)
//	if errors.Is(err, cli.ErrShowHelp) {
//	    showHelp()
//	    os.Exit(0)
//	}
package cli
