// Package session computes clipstty session directory paths.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	DataDirName     = ".clipstty"
	SessionsDirName = "sessions"
	IndexFileName   = "session_index.json"

	// DayLayout is the YYYY/MM/DD partition under the sessions directory.
	DayLayout = "2006/01/02"
)

// Home returns override when set, otherwise the current user's home directory.
func Home(override string) (string, error) {
	if override != "" {
		return filepath.Clean(override), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return homeDir, nil
}

// DataDir returns ~/.clipstty for the given home directory.
func DataDir(home string) string {
	return filepath.Join(home, DataDirName)
}

// SessionsDir returns ~/.clipstty/sessions for the given home directory.
func SessionsDir(home string) string {
	return filepath.Join(DataDir(home), SessionsDirName)
}

// DayDir returns the session directory for the calendar date of day,
// in day's own location.
func DayDir(sessionsDir string, day time.Time) string {
	return filepath.Join(sessionsDir, filepath.FromSlash(day.Format(DayLayout)))
}

// IndexFile returns the path of the session index kept at the sessions root.
func IndexFile(sessionsDir string) string {
	return filepath.Join(sessionsDir, IndexFileName)
}
