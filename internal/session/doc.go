// Package session knows where clipstty keeps its recording sessions.
//
// This package handles:
//   - Resolving the home directory (or an explicit override)
//   - The ~/.clipstty data directory and its sessions/ subdirectory
//   - The date-partitioned day directory for a given date
//   - The session index file kept at the sessions root
//
// Session files are written by clipstty at:
//
//	~/.clipstty/sessions/{YYYY}/{MM}/{DD}/
//
// Month and day are zero-padded. The layout is owned by the recorder;
// this package only computes paths and never creates directories.
//
// Example usage:
//
//	home, err := session.Home("")
//	dayDir := session.DayDir(session.SessionsDir(home), time.Now())
package session
