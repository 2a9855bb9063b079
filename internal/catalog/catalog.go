// Package catalog holds the palette and shell skin tables and resolves
// named color roles from them. A Catalog is read-only once loaded and may be
// shared freely between goroutines.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPalette   = "Original DMG"
	DefaultRoleColor = "#cadc9f"
	DefaultShellBase = "#4aa3a8"
)

// ErrUnknown is returned when a palette or shell name is not in the catalog.
var ErrUnknown = errors.New("unknown name")

// Roles maps role names (cardPrimary, titleInk, shellBase, ...) to hex colors.
type Roles map[string]string

// Ordered returns role/color pairs following order, then any remaining roles sorted.
func (r Roles) Ordered(order []string) [][2]string {
	out := make([][2]string, 0, len(r))
	seen := make(map[string]struct{}, len(order))
	for _, key := range order {
		if v, ok := r[key]; ok {
			out = append(out, [2]string{key, v})
			seen[key] = struct{}{}
		}
	}
	var rest []string
	for key := range r {
		if _, ok := seen[key]; !ok {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		out = append(out, [2]string{key, r[key]})
	}
	return out
}

func (r Roles) clone() Roles {
	out := make(Roles, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

type MenuPalette struct {
	Name string `yaml:"name" toml:"name" json:"name"`
	// Legacy is the four-tone set (dark, border, card, light) used by the board renderer.
	Legacy []string `yaml:"legacy" toml:"legacy" json:"legacy,omitempty"`
	Roles  Roles    `yaml:"roles" toml:"roles" json:"roles"`
}

type ShellSkin struct {
	Name   string `yaml:"name" toml:"name" json:"name"`
	Accent string `yaml:"accent" toml:"accent" json:"accent,omitempty"`
	Roles  Roles  `yaml:"roles" toml:"roles" json:"roles"`
}

type Catalog struct {
	Menu   []MenuPalette                `yaml:"menu" toml:"menu" json:"menu"`
	Pages  map[string]map[string]Roles `yaml:"pages" toml:"pages" json:"pages"`
	Shells []ShellSkin                  `yaml:"shells" toml:"shells" json:"shells"`

	menuIdx  map[string]int
	shellIdx map[string]int
}

var (
	//go:embed default.yaml
	defaultYAML []byte
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the built-in catalog. It is decoded once.
func Default() *Catalog {
	defaultOnce.Do(func() {
		var c Catalog
		if err := yaml.Unmarshal(defaultYAML, &c); err != nil {
			panic(fmt.Sprintf("catalog: embedded default: %v", err))
		}
		if err := c.init(); err != nil {
			panic(fmt.Sprintf("catalog: embedded default: %v", err))
		}
		defaultCat = &c
	})
	return defaultCat
}

func (c *Catalog) init() error {
	if err := c.validate(); err != nil {
		return err
	}
	c.menuIdx = make(map[string]int, len(c.Menu))
	for i, p := range c.Menu {
		c.menuIdx[p.Name] = i
	}
	c.shellIdx = make(map[string]int, len(c.Shells))
	for i, s := range c.Shells {
		c.shellIdx[s.Name] = i
	}
	return nil
}

func (c *Catalog) PaletteNames() []string {
	out := make([]string, len(c.Menu))
	for i, p := range c.Menu {
		out[i] = p.Name
	}
	return out
}

func (c *Catalog) ShellNames() []string {
	out := make([]string, len(c.Shells))
	for i, s := range c.Shells {
		out[i] = s.Name
	}
	return out
}

// Palette finds a menu palette by name, ignoring case.
func (c *Catalog) Palette(name string) (MenuPalette, error) {
	if i, ok := c.menuIdx[name]; ok {
		return c.Menu[i], nil
	}
	for _, p := range c.Menu {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return MenuPalette{}, unknownError("palette", name, c.PaletteNames())
}

// Shell finds a shell skin by name, ignoring case.
func (c *Catalog) Shell(name string) (ShellSkin, error) {
	if i, ok := c.shellIdx[name]; ok {
		return c.Shells[i], nil
	}
	for _, s := range c.Shells {
		if strings.EqualFold(s.Name, strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return ShellSkin{}, unknownError("shell", name, c.ShellNames())
}

// PaletteAt cycles through the palettes in catalog order, as the settings
// screen does when the player steps past the last entry.
func (c *Catalog) PaletteAt(i int) MenuPalette {
	if len(c.Menu) == 0 {
		return MenuPalette{}
	}
	return c.Menu[wrap(i, len(c.Menu))]
}

func (c *Catalog) ShellAt(i int) ShellSkin {
	if len(c.Shells) == 0 {
		return ShellSkin{}
	}
	return c.Shells[wrap(i, len(c.Shells))]
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func unknownError(kind, name string, candidates []string) error {
	if hint := Suggest(name, candidates); hint != "" {
		return fmt.Errorf("%s %q: %w (did you mean %q?)", kind, name, ErrUnknown, hint)
	}
	return fmt.Errorf("%s %q: %w", kind, name, ErrUnknown)
}

// Suggest returns the candidate closest to name, or "" when nothing is close.
func Suggest(name string, candidates []string) string {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return ""
	}
	best := ""
	bestDist := 0
	for _, cand := range candidates {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(cand))
		if d > len(cand)/2 {
			continue
		}
		if best == "" || d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best
}

// ShellColorAt is the accent color listed for the shell at index i.
func (c *Catalog) ShellColorAt(i int) string {
	return c.ShellAt(i).Accent
}

// LegacyPalette is the four-tone board palette at index i.
func (c *Catalog) LegacyPalette(i int) []string {
	return c.PaletteAt(i).Legacy
}
