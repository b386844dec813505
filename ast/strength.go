package ast

import "fmt"

// BreakStrength is the relative intensity of a pause.
type BreakStrength int

const (
	StrengthNone BreakStrength = iota
	StrengthXWeak
	StrengthWeak
	StrengthMedium
	StrengthStrong
	StrengthXStrong
)

var strengthNames = [...]string{
	StrengthNone:    "none",
	StrengthXWeak:   "x-weak",
	StrengthWeak:    "weak",
	StrengthMedium:  "medium",
	StrengthStrong:  "strong",
	StrengthXStrong: "x-strong",
}

// ParseBreakStrength returns the strength whose canonical form is s.
// Only the six canonical forms are accepted; matching is case-sensitive.
func ParseBreakStrength(s string) (BreakStrength, bool) {
	for i, name := range strengthNames {
		if name == s {
			return BreakStrength(i), true
		}
	}
	return 0, false
}

// String returns the canonical markup form, e.g. "x-strong".
func (s BreakStrength) String() string {
	if s < 0 || int(s) >= len(strengthNames) {
		return fmt.Sprintf("BreakStrength(%d)", int(s))
	}
	return strengthNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s BreakStrength) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(strengthNames) {
		return nil, fmt.Errorf("ssml: invalid break strength %d", int(s))
	}
	return []byte(strengthNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *BreakStrength) UnmarshalText(text []byte) error {
	v, ok := ParseBreakStrength(string(text))
	if !ok {
		return fmt.Errorf("ssml: invalid break strength %q", text)
	}
	*s = v
	return nil
}
