// Package cli handles command-line argument parsing.
package cli

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the format accepted by --date.
const DateLayout = "2006-01-02"

var (
	ErrShowHelp    = errors.New("show_help")
	ErrShowVersion = errors.New("show_version")
)

// Args represents parsed command-line arguments.
type Args struct {
	// Inspection target
	Home string
	Date time.Time // zero means today

	// Mode flags
	Watch  bool
	Digest bool
	Copy   bool

	// Output flags
	NoColor bool
	Verbose bool
}

// Parse parses command-line arguments into an Args struct.
func Parse(osArgs []string) (*Args, error) {
	args := &Args{}

	i := 1 // Skip program name
	for i < len(osArgs) {
		arg := osArgs[i]

		switch arg {
		case "-h", "--help":
			return nil, ErrShowHelp

		case "--version":
			return nil, ErrShowVersion

		case "--home":
			if i+1 >= len(osArgs) {
				return nil, fmt.Errorf("--home requires a directory argument")
			}
			args.Home = osArgs[i+1]
			i += 2

		case "--date":
			if i+1 >= len(osArgs) {
				return nil, fmt.Errorf("--date requires a YYYY-MM-DD argument")
			}
			date, err := time.ParseInLocation(DateLayout, osArgs[i+1], time.Local)
			if err != nil {
				return nil, fmt.Errorf("--date: invalid date %q, want YYYY-MM-DD", osArgs[i+1])
			}
			args.Date = date
			i += 2

		case "--watch":
			args.Watch = true
			i++

		case "--digest":
			args.Digest = true
			i++

		case "--copy":
			args.Copy = true
			i++

		case "--no-color":
			args.NoColor = true
			i++

		case "-v", "--verbose":
			args.Verbose = true
			i++

		default:
			return nil, fmt.Errorf("unknown argument: %s", arg)
		}
	}

	return args, nil
}
