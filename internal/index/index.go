// Package index summarizes the session index clipstty keeps next to its
// recordings.
package index

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/rickgorman/clipstty-check/internal/session"
)

// ErrMalformed is returned when the index file is not a usable session index.
var ErrMalformed = errors.New("malformed session index")

// Summary describes what the index says about the sessions directory.
type Summary struct {
	Path    string
	Total   int      // sessions listed in the index
	Today   int      // sessions whose start_time falls on the report date
	Missing []string // file paths of those sessions that are not on disk
}

// Read loads the index under sessionsDir and summarizes it for day.
// Returns nil, nil if there is no index file.
func Read(sessionsDir string, day time.Time) (*Summary, error) {
	path := session.IndexFile(sessionsDir)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session index: %w", err)
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrMalformed)
	}

	sessions := gjson.GetBytes(data, "sessions")
	if !sessions.IsObject() {
		return nil, fmt.Errorf("%s: no sessions object: %w", path, ErrMalformed)
	}

	summary := &Summary{Path: path}
	sessions.ForEach(func(id, meta gjson.Result) bool {
		summary.Total++

		started, err := time.Parse(time.RFC3339Nano, meta.Get("start_time").String())
		if err != nil {
			log.Debug().Str("session", id.String()).Err(err).Msg("Skipping index entry without start_time")
			return true
		}
		if !sameDay(started.In(day.Location()), day) {
			return true
		}
		summary.Today++

		filePath := meta.Get("file_path").String()
		if filePath == "" {
			return true
		}
		if !filepath.IsAbs(filePath) {
			filePath = filepath.Join(sessionsDir, filePath)
		}
		if _, err := os.Stat(filePath); errors.Is(err, fs.ErrNotExist) {
			summary.Missing = append(summary.Missing, filePath)
		}
		return true
	})

	sort.Strings(summary.Missing)
	return summary, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
