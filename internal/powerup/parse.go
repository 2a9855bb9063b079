package powerup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Parse accepts a numeric code or a power-up name in any case.
func Parse(raw string) (Type, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return None, fmt.Errorf("empty power-up")
	}
	if n, err := strconv.Atoi(v); err == nil {
		return Type(n), nil
	}
	upper := strings.ToUpper(v)
	for _, t := range All() {
		if t.BuffName() == upper {
			return t, nil
		}
	}
	if hint := suggest(upper); hint != "" {
		return None, fmt.Errorf("unknown power-up %q (did you mean %s?)", raw, strings.ToLower(hint))
	}
	return None, fmt.Errorf("unknown power-up %q", raw)
}

func suggest(upper string) string {
	best := ""
	bestDist := 0
	for _, t := range All() {
		name := t.BuffName()
		d := levenshtein.ComputeDistance(upper, name)
		if d > len(name)/2 {
			continue
		}
		if best == "" || d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}
