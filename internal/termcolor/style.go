package termcolor

import (
	"fmt"
	"strings"

	"github.com/phyten/gbtheme/internal/colorutil"
)

type Style struct {
	Bold      bool
	Underline bool
	Dim       bool
	FG        *colorutil.RGB
	BG        *colorutil.RGB
}

// Apply wraps text in SGR sequences for profile. Disabled or empty styles
// return text unchanged.
func Apply(s Style, text string, profile Profile, enabled bool) string {
	if !enabled || text == "" {
		return text
	}
	codes := sgrCodes(s, profile)
	if len(codes) == 0 {
		return text
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + text + "\x1b[0m"
}

func sgrCodes(s Style, profile Profile) []string {
	codes := make([]string, 0, 5)
	if s.Bold {
		codes = append(codes, "1")
	}
	if s.Dim {
		codes = append(codes, "2")
	}
	if s.Underline {
		codes = append(codes, "4")
	}
	if s.FG != nil {
		codes = append(codes, colorCode(*s.FG, profile, false))
	}
	if s.BG != nil {
		codes = append(codes, colorCode(*s.BG, profile, true))
	}
	return codes
}

func colorCode(c colorutil.RGB, profile Profile, background bool) string {
	switch profile {
	case ProfileTrueColor:
		if background {
			return fmt.Sprintf("48;2;%d;%d;%d", c.R, c.G, c.B)
		}
		return fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B)
	case ProfileANSI256:
		if background {
			return fmt.Sprintf("48;5;%d", rgbToANSI256(c.R, c.G, c.B))
		}
		return fmt.Sprintf("38;5;%d", rgbToANSI256(c.R, c.G, c.B))
	default:
		if background {
			return fmt.Sprintf("4%d", nearestBasic(c))
		}
		return fmt.Sprintf("3%d", nearestBasic(c))
	}
}
