package termcolor

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type ColorMode int

const (
	ModeAuto ColorMode = iota
	ModeAlways
	ModeNever
)

func (m ColorMode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

func ParseMode(v string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "auto":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("unknown color mode: %s", v)
	}
}

type Profile int

const (
	ProfileBasic8 Profile = iota
	ProfileANSI256
	ProfileTrueColor
)

func (p Profile) String() string {
	switch p {
	case ProfileTrueColor:
		return "truecolor"
	case ProfileANSI256:
		return "ansi256"
	default:
		return "basic"
	}
}

// EnvMap turns os.Environ() style entries into a map.
func EnvMap(values []string) map[string]string {
	env := make(map[string]string, len(values))
	for _, entry := range values {
		if entry == "" {
			continue
		}
		key, value, _ := strings.Cut(entry, "=")
		env[key] = value
	}
	return env
}

// Enabled resolves mode against the environment and stdout.
//
// For ModeAuto the first match wins: TERM=dumb, NO_COLOR and CLICOLOR=0
// disable colors, CLICOLOR_FORCE or FORCE_COLOR (non-zero) enable them, and
// otherwise colors follow whether stdout is a terminal.
func Enabled(mode ColorMode, stdout *os.File, env map[string]string) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	if strings.EqualFold(strings.TrimSpace(env["TERM"]), "dumb") {
		return false
	}
	if strings.TrimSpace(env["NO_COLOR"]) != "" || strings.TrimSpace(env["CLICOLOR"]) == "0" {
		return false
	}
	if forced(env["CLICOLOR_FORCE"]) || forced(env["FORCE_COLOR"]) {
		return true
	}
	return isTerminal(stdout)
}

// DetectProfile picks the richest palette COLORTERM/TERM advertise.
func DetectProfile(env map[string]string) Profile {
	colorterm := strings.ToLower(strings.TrimSpace(env["COLORTERM"]))
	for _, marker := range []string{"truecolor", "24bit", "24-bit"} {
		if strings.Contains(colorterm, marker) {
			return ProfileTrueColor
		}
	}
	if strings.Contains(strings.ToLower(env["TERM"]), "256color") {
		return ProfileANSI256
	}
	return ProfileBasic8
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func forced(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != "0"
}
