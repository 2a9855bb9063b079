package colorutil

import "fmt"

// The simple path is a plain weighted sum without gamma correction. It is
// tuned together with SimpleCutoff and must not be replaced by
// RelativeLuminance.
const (
	SimpleCutoff   = 0.54
	MutedAlpha     = 0.9
	SecondaryAlpha = 0.78
)

type RGBA struct {
	RGB
	A float64
}

func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.A)
}

func SimpleLuminance(rgb RGB) float64 {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0
	return 0.299*r + 0.587*g + 0.114*b
}

// ReadableText picks darkInk on backgrounds brighter than SimpleCutoff.
func ReadableText(bg, darkInk, lightInk string) string {
	if SimpleLuminance(ParseHex(bg)) > SimpleCutoff {
		return darkInk
	}
	return lightInk
}

func ReadableMutedText(bg, darkInk, lightInk string) RGBA {
	return RGBA{RGB: ParseHex(ReadableText(bg, darkInk, lightInk)), A: MutedAlpha}
}

func ReadableSecondaryText(bg, darkInk, lightInk string) RGBA {
	return RGBA{RGB: ParseHex(ReadableText(bg, darkInk, lightInk)), A: SecondaryAlpha}
}
