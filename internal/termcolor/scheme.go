package termcolor

import (
	"strconv"
	"strings"
)

type Scheme int

const (
	SchemeDark Scheme = iota
	SchemeLight
)

// DetectScheme guesses the terminal background from COLORFGBG ("fg;bg",
// sometimes "fg;default;bg") and falls back to TERM names containing "light".
func DetectScheme(env map[string]string) Scheme {
	if raw := strings.TrimSpace(env["COLORFGBG"]); raw != "" {
		parts := strings.Split(raw, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil && bg >= 0 {
			if bg >= 7 {
				return SchemeLight
			}
			return SchemeDark
		}
	}
	if strings.Contains(strings.ToLower(env["TERM"]), "light") {
		return SchemeLight
	}
	return SchemeDark
}

// Background is a representative background color for the scheme.
func (s Scheme) Background() string {
	if s == SchemeLight {
		return "#ffffff"
	}
	return "#000000"
}
