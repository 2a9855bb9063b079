package colorutil

import "math"

// Linearize applies the sRGB transfer function to a 0-255 channel.
func Linearize(channel uint8) float64 {
	c := float64(channel) / 255.0
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func RelativeLuminance(rgb RGB) float64 {
	r := Linearize(rgb.R)
	g := Linearize(rgb.G)
	b := Linearize(rgb.B)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Luminance is RelativeLuminance for a hex string.
func Luminance(hex string) float64 {
	return RelativeLuminance(ParseHex(hex))
}

func ContrastRatio(fg, bg RGB) float64 {
	l1 := RelativeLuminance(fg)
	l2 := RelativeLuminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// Contrast is ContrastRatio for two hex strings.
func Contrast(a, b string) float64 {
	return ContrastRatio(ParseHex(a), ParseHex(b))
}
