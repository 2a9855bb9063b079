package colorutil

// PickReadableInk returns whichever ink contrasts more with bg. Ties go to darkInk.
func PickReadableInk(bg, darkInk, lightInk string) string {
	if Contrast(darkInk, bg) >= Contrast(lightInk, bg) {
		return darkInk
	}
	return lightInk
}

// EnsureContrast keeps candidate when it reaches minRatio against bg and
// otherwise falls back to PickReadableInk. An empty candidate always falls back.
func EnsureContrast(candidate, bg string, minRatio float64, darkInk, lightInk string) string {
	if candidate != "" && Contrast(candidate, bg) >= minRatio {
		return candidate
	}
	return PickReadableInk(bg, darkInk, lightInk)
}

// SoftenInk blends ink toward bg by amount and re-checks the result with
// EnsureContrast using the same threshold and fallback inks.
func SoftenInk(ink, bg string, amount, minRatio float64, darkInk, lightInk string) string {
	mixed := Mix(ParseHex(ink), ParseHex(bg), amount).Hex()
	return EnsureContrast(mixed, bg, minRatio, darkInk, lightInk)
}
