package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rickgorman/clipstty-check/internal/cli"
	"github.com/rickgorman/clipstty-check/internal/clock"
	"github.com/rickgorman/clipstty-check/internal/inspect"
	"github.com/rickgorman/clipstty-check/internal/logger"
	"github.com/rickgorman/clipstty-check/internal/session"
	"github.com/rickgorman/clipstty-check/internal/ui"
	"github.com/rickgorman/clipstty-check/internal/watch"
)

const version = "0.3.0"

func main() {
	// Parse arguments
	args, err := cli.Parse(os.Args)
	if err != nil {
		if errors.Is(err, cli.ErrShowHelp) {
			showHelp()
			os.Exit(0)
		}
		if errors.Is(err, cli.ErrShowVersion) {
			fmt.Printf("clipstty-check %s\n", version)
			os.Exit(0)
		}
		ui.Fail("Error parsing arguments: %v", err)
		ui.Info("Run %s for usage information", ui.Bold("clipstty-check --help"))
		os.Exit(1)
	}

	if args.NoColor {
		ui.SetColor(false)
	}
	logger.New(logger.Config{
		Level:   logger.LevelFor(args.Verbose),
		Pretty:  true,
		NoColor: args.NoColor,
	})

	home, err := session.Home(args.Home)
	if err != nil {
		ui.Fail("%v", err)
		os.Exit(1)
	}

	var clk clock.Clock = clock.System{}
	if !args.Date.IsZero() {
		clk = clock.Fixed(args.Date)
	}
	insp := inspect.New(home, clk)

	if _, err := check(insp, args); err != nil {
		ui.Fail("%v", err)
		os.Exit(1)
	}

	if args.Watch {
		if err := watchLoop(insp, args); err != nil {
			ui.Fail("%v", err)
			os.Exit(1)
		}
	}
}

// check runs one inspection, prints it, and handles --digest and --copy.
func check(insp *inspect.Inspector, args *cli.Args) (*inspect.Report, error) {
	report, err := insp.Check()
	if err != nil {
		return nil, err
	}

	if args.Digest {
		ui.DimMsg("digest %s", inspect.Digest(report))
	}

	if args.Copy {
		if err := inspect.CopyToClipboard(report); err != nil {
			ui.Warn("%v", err)
		} else {
			ui.Success("Report copied to clipboard")
		}
	}

	return report, nil
}

func watchLoop(insp *inspect.Inspector, args *cli.Args) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watch.New(watch.Config{
		Paths: insp.Paths,
		OnChange: func() error {
			ui.BlankLine()
			ui.DimMsg("change detected at %s", time.Now().Format("15:04:05"))
			report, err := check(insp, args)
			if err != nil {
				return err
			}
			ui.Info("Now: %s", inspect.Summary(report))
			return nil
		},
	})
	if err != nil {
		return err
	}
	defer w.Close()

	log.Debug().Int("dirs", w.Watched()).Msg("Watch started")
	ui.BlankLine()
	ui.Info("Watching for changes %s", ui.Dim("(Ctrl-C to stop)"))

	return w.Run(ctx)
}

func showHelp() {
	help := `clipstty-check - verify clipstty wrote today's session files

USAGE:
    clipstty-check [OPTIONS]

Checks ~/.clipstty and ~/.clipstty/sessions, then lists the files in
~/.clipstty/sessions/YYYY/MM/DD/ for today's date with their sizes.

OPTIONS:
    --home DIR             Inspect DIR instead of your home directory
    --date YYYY-MM-DD      Inspect that day's session directory
    --watch                Keep running and re-check on every change
    --digest               Print a fingerprint of the report
    --copy                 Copy the report to the clipboard
    --no-color             Disable colored output
    -v, --verbose          Print debug logs to stderr
    -h, --help             Show this help message
    --version              Show version information

EXAMPLES:
    # Check today's sessions
    clipstty-check

    # Watch while saying "start recording test session" / "stop recording"
    clipstty-check --watch

    # Compare two runs
    clipstty-check --digest
`
	fmt.Print(help)
}
