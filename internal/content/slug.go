package content

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Slugify lowercases the title and keeps only [a-z0-9-] runs.
func Slugify(s string) string {
	var b strings.Builder
	lastDash := true // suppress leading dash
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r) && r < 128:
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// SlugWithSuffix appends a timestamp suffix to reduce collision probability.
// Uniqueness is still best-effort, the store does not enforce it across
// concurrent runs.
func SlugWithSuffix(base string, now time.Time) string {
	if base == "" {
		base = "article"
	}
	return fmt.Sprintf("%s-%d", base, now.Unix())
}
