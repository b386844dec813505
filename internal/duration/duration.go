// Package duration parses the time values used by break elements.
package duration

import (
	"strings"
	"time"
	"unicode"
)

// Parse converts strings such as "500ms", "1.5s" or "1m 30s" into a duration.
// Whitespace is ignored and a bare number is read as seconds. It reports
// false for empty, negative or malformed input.
func Parse(s string) (time.Duration, bool) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return 0, false
	}
	if isNumber(s) {
		s += "s"
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, false
	}
	return d, true
}

func isNumber(s string) bool {
	dot := false
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' && !dot && i > 0:
			dot = true
		default:
			return false
		}
	}
	return true
}
