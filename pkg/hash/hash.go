// Package hash provides hashing utilities for report fingerprints.
package hash

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"strings"
)

// DigestLength is the number of hex characters in a report digest.
const DigestLength = 12

// ReportDigest returns a short fingerprint of report text.
func ReportDigest(text string) string {
	return MD5Sum(normalize(text))[:DigestLength]
}

// MD5Sum returns the full MD5 hash of a string.
func MD5Sum(s string) string {
	hasher := md5.New()
	_, _ = io.WriteString(hasher, s)
	return hex.EncodeToString(hasher.Sum(nil))
}

func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
