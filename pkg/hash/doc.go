// Package hash provides short, stable fingerprints for report text.
//
// clipstty-check prints a digest of its plain-text report with
// --digest. Running the check twice over an unchanged session tree
// on the same date prints the same digest, so two runs (or two
// machines) can be compared at a glance.
//
// The digest is the first 12 characters of MD5(text) after line
// endings are normalized to "\n" and trailing whitespace is removed
// from each line.
//
// Example usage:
//
//	d := hash.ReportDigest("hello")
//	// Returns: "5d41402abc4b"
package hash
