package termcolor

import "github.com/phyten/gbtheme/internal/colorutil"

const (
	swatchDarkInk  = "#000000"
	swatchLightInk = "#ffffff"
)

// Swatch styles a cell filled with hex and labeled in whichever of black or
// white reads better on it.
func Swatch(hex string) Style {
	bg := colorutil.ParseHex(hex)
	fg := colorutil.ParseHex(colorutil.PickReadableInk(hex, swatchDarkInk, swatchLightInk))
	return Style{FG: &fg, BG: &bg}
}

// Ink styles text drawn in hex over bg.
func Ink(hex, bg string) Style {
	fg := colorutil.ParseHex(hex)
	back := colorutil.ParseHex(bg)
	return Style{FG: &fg, BG: &back}
}

var basicColors = [8]colorutil.RGB{
	{R: 0, G: 0, B: 0},
	{R: 205, G: 0, B: 0},
	{R: 0, G: 205, B: 0},
	{R: 205, G: 205, B: 0},
	{R: 0, G: 0, B: 238},
	{R: 205, G: 0, B: 205},
	{R: 0, G: 205, B: 205},
	{R: 229, G: 229, B: 229},
}

// nearestBasic maps c to the closest of the eight standard ANSI colors.
func nearestBasic(c colorutil.RGB) int {
	best, bestDist := 0, -1
	for i, b := range basicColors {
		dr := int(c.R) - int(b.R)
		dg := int(c.G) - int(b.G)
		db := int(c.B) - int(b.B)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func rgbToANSI256(r, g, b uint8) int {
	if r == g && g == b {
		if r < 8 {
			return 16
		}
		if r > 248 {
			return 231
		}
		return 232 + (int(r)-8)*24/247
	}
	rr := int(r) * 5 / 255
	gg := int(g) * 5 / 255
	bb := int(b) * 5 / 255
	return 16 + 36*rr + 6*gg + bb
}
