package inspect

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rickgorman/clipstty-check/internal/clock"
	"github.com/rickgorman/clipstty-check/internal/index"
	"github.com/rickgorman/clipstty-check/internal/session"
)

// FileEntry is one entry found in the expected day directory.
type FileEntry struct {
	Name       string
	Size       int64
	IsDir      bool
	Kind       Kind
	SessionID  string    // set when the file stem is a session UUID
	RecordedAt time.Time // set when the file stem is a YYYYMMDD_HHMMSS timestamp
}

// Report is the result of one inspection.
type Report struct {
	DataDir           string
	DataDirExists     bool
	SessionsDir       string
	SessionsDirExists bool
	SessionsContents  []string

	Date              time.Time
	ExpectedDir       string
	ExpectedDirExists bool
	Files             []FileEntry

	Index    *index.Summary
	IndexErr error // a malformed index is reported, not fatal
}

// Inspector checks the session tree under one home directory.
type Inspector struct {
	home  string
	clock clock.Clock
}

// New creates an Inspector for home. A nil clock means the system clock.
func New(home string, clk clock.Clock) *Inspector {
	if clk == nil {
		clk = clock.System{}
	}
	return &Inspector{home: home, clock: clk}
}

// Paths returns the directories a report looks at, for the current date.
// The year and month directories are included so that creating the day
// directory inside them is observable.
func (i *Inspector) Paths() []string {
	sessionsDir := session.SessionsDir(i.home)
	dayDir := session.DayDir(sessionsDir, i.clock.Now())
	monthDir := filepath.Dir(dayDir)
	return []string{
		session.DataDir(i.home),
		sessionsDir,
		filepath.Dir(monthDir),
		monthDir,
		dayDir,
	}
}

// Run gathers a Report. The clock is read once.
func (i *Inspector) Run() (*Report, error) {
	now := i.clock.Now()

	r := &Report{
		DataDir:     session.DataDir(i.home),
		SessionsDir: session.SessionsDir(i.home),
		Date:        now,
	}
	r.ExpectedDir = session.DayDir(r.SessionsDir, now)

	var err error
	if r.DataDirExists, err = exists(r.DataDir); err != nil {
		return nil, err
	}
	if r.SessionsDirExists, err = exists(r.SessionsDir); err != nil {
		return nil, err
	}

	if r.SessionsDirExists {
		if r.SessionsContents, err = listNames(r.SessionsDir); err != nil {
			return nil, err
		}

		r.Index, r.IndexErr = index.Read(r.SessionsDir, now)
		if r.IndexErr != nil && !errors.Is(r.IndexErr, index.ErrMalformed) {
			return nil, r.IndexErr
		}
	}

	if r.ExpectedDirExists, err = exists(r.ExpectedDir); err != nil {
		return nil, err
	}
	if r.ExpectedDirExists {
		if r.Files, err = listFiles(r.ExpectedDir, now.Location()); err != nil {
			return nil, err
		}
	}

	log.Debug().
		Str("expected_dir", r.ExpectedDir).
		Bool("exists", r.ExpectedDirExists).
		Int("files", len(r.Files)).
		Msg("Inspection complete")

	return r, nil
}

// exists reports whether path exists. Only "not found" counts as absent.
func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("path", path).Msg("Path does not exist")
		return false, nil
	}
	return false, fmt.Errorf("failed to check %s: %w", path, err)
}

// listNames returns the sorted names of the immediate children of dir.
func listNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// listFiles stats every entry of dir. An entry removed between the listing
// and the stat is reported with size 0.
func listFiles(dir string, loc *time.Location) ([]FileEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	files := make([]FileEntry, 0, len(entries))
	for _, entry := range entries {
		file := FileEntry{Name: entry.Name(), IsDir: entry.IsDir()}

		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		switch {
		case err == nil:
			file.Size = info.Size()
			file.IsDir = info.IsDir()
		case errors.Is(err, fs.ErrNotExist):
			log.Debug().Str("file", entry.Name()).Msg("File vanished before stat")
		default:
			return nil, fmt.Errorf("failed to stat %s: %w", entry.Name(), err)
		}

		classify(&file, loc)
		files = append(files, file)
	}

	sort.Slice(files, func(a, b int) bool {
		return files[a].Name < files[b].Name
	})
	return files, nil
}

// Check gathers a report and prints it.
func (i *Inspector) Check() (*Report, error) {
	r, err := i.Run()
	if err != nil {
		return nil, err
	}
	Render(r)
	return r, nil
}
