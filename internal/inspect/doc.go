// Package inspect reports on the session files clipstty has written.
//
// An Inspector gathers a Report in one pass over the filesystem:
//
//  1. Does ~/.clipstty exist? Does ~/.clipstty/sessions exist?
//  2. What is directly inside the sessions directory?
//  3. Which day directory is expected for today's date?
//  4. Which files are in it, and how large are they?
//
// Render prints a Report through the ui package. Missing directories
// are reported, never returned as errors. Any other I/O failure (for
// example permission denied) is returned from Run and ends the check.
//
// Example usage:
//
//	insp := inspect.New(home, clock.System{})
//	report, err := insp.Run()
//	if err != nil {
//	    return err
//	}
//	inspect.Render(report)
package inspect
