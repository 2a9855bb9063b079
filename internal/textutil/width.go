// Package textutil measures and pads table cells that may carry ANSI color
// sequences and wide glyphs.
package textutil

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// CSI and OSC escape sequences.
var ansiRe = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)

func StripANSI(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	return ansiRe.ReplaceAllString(s, "")
}

// VisibleWidth is the terminal column width of s, ignoring escape sequences.
func VisibleWidth(s string) int {
	width := 0
	g := uniseg.NewGraphemes(StripANSI(s))
	for g.Next() {
		width += runewidth.StringWidth(g.Str())
	}
	return width
}

// TruncateByWidth shortens plain text to at most w columns without splitting
// graphemes, ending with ellipsis when it fits.
func TruncateByWidth(s string, w int, ellipsis string) string {
	if w <= 0 || s == "" {
		return ""
	}
	if VisibleWidth(s) <= w {
		return s
	}
	budget := w - runewidth.StringWidth(ellipsis)
	if budget < 0 {
		budget, ellipsis = w, ""
	}
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(StripANSI(s))
	for g.Next() {
		seg := g.Str()
		segW := runewidth.StringWidth(seg)
		if used+segW > budget {
			break
		}
		b.WriteString(seg)
		used += segW
	}
	return b.String() + ellipsis
}

// PadRight pads s with spaces up to w visible columns.
func PadRight(s string, w int) string {
	if pad := w - VisibleWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
