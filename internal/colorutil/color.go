package colorutil

import (
	"fmt"
	"math"
	"strconv"
)

type RGB struct {
	R uint8
	G uint8
	B uint8
}

var black = RGB{0, 0, 0}

// ParseHex decodes "#rrggbb" or "rrggbb". Anything else decodes to black.
func ParseHex(s string) RGB {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return black
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return black
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// ValidHex reports whether s would decode without falling back to black.
func ValidHex(s string) bool {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return false
	}
	_, err := strconv.ParseUint(s, 16, 32)
	return err == nil
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Mix moves a toward b by amount, clamped to [0,1].
func Mix(a, b RGB, amount float64) RGB {
	t := math.Max(0, math.Min(1, amount))
	if math.IsNaN(amount) {
		t = 0
	}
	return RGB{
		R: blendChannel(a.R, b.R, t),
		G: blendChannel(a.G, b.G, t),
		B: blendChannel(a.B, b.B, t),
	}
}

func blendChannel(a, b uint8, t float64) uint8 {
	v := math.Round(float64(a)*(1-t) + float64(b)*t)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
