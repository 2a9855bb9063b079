package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/phyten/gbtheme/internal/colorutil"
	"github.com/phyten/gbtheme/internal/termcolor"
)

var outputFormats = []string{"table", "json", "ndjson", "csv", "markdown"}

func NormalizeOutput(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "md" {
		v = "markdown"
	}
	for _, f := range outputFormats {
		if v == f {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid output: %s (want %s)", value, strings.Join(outputFormats, "|"))
}

func NormalizeLogLevel(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "":
		return "warn", nil
	case "debug", "info", "warn", "error":
		return v, nil
	case "warning":
		return "warn", nil
	default:
		return "", fmt.Errorf("invalid log_level: %s", value)
	}
}

// Normalize canonicalizes every field and reports all invalid values together.
func Normalize(s Settings) (Settings, error) {
	var errs []error
	var err error
	if s.Output, err = NormalizeOutput(s.Output); err != nil {
		errs = append(errs, err)
	}
	if s.LogLevel, err = NormalizeLogLevel(s.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if mode, modeErr := termcolor.ParseMode(s.Color); modeErr != nil {
		errs = append(errs, modeErr)
	} else {
		s.Color = mode.String()
	}
	if s.ShellColor != "" && !colorutil.ValidHex(s.ShellColor) {
		errs = append(errs, fmt.Errorf("invalid shell_color: %q (want #rrggbb)", s.ShellColor))
	}
	if s.ShellColor != "" && !strings.HasPrefix(s.ShellColor, "#") {
		s.ShellColor = "#" + s.ShellColor
	}
	if strings.TrimSpace(s.Palette) == "" {
		errs = append(errs, errors.New("palette cannot be empty"))
	}
	return s, errors.Join(errs...)
}
