package catalog

import (
	"github.com/phyten/gbtheme/internal/colorutil"
	"github.com/phyten/gbtheme/internal/powerup"
)

var MenuRoleNames = []string{
	"cardPrimary", "cardSecondary", "actionCard", "hintCard", "borderPrimary",
	"borderSecondary", "titleInk", "secondaryInk", "actionInk", "hintInk",
}

var PageRoleNames = []string{
	"pageBg", "title", "divider", "cardNormal", "cardSelected", "cardBorder",
	"primaryText", "secondaryText", "iconStroke", "iconFill", "unknownText",
	"badgeFill", "badgeText", "scrollbarHandle", "scrollbarTrack",
}

// page role -> menu role it is derived from
var pageRoleSource = map[string]string{
	"pageBg":          "cardPrimary",
	"title":           "titleInk",
	"divider":         "borderPrimary",
	"cardNormal":      "hintCard",
	"cardSelected":    "actionCard",
	"cardBorder":      "borderPrimary",
	"primaryText":     "titleInk",
	"secondaryText":   "secondaryInk",
	"iconStroke":      "titleInk",
	"iconFill":        "cardPrimary",
	"unknownText":     "secondaryInk",
	"badgeFill":       "actionCard",
	"badgeText":       "actionInk",
	"scrollbarHandle": "borderPrimary",
	"scrollbarTrack":  "hintCard",
}

// MenuColor resolves role for palette. Missing entries fall back to fallback,
// then to the default palette, then to DefaultRoleColor.
func (c *Catalog) MenuColor(palette, role, fallback string) string {
	if i, ok := c.menuIdx[palette]; ok {
		if v, ok := c.Menu[i].Roles[role]; ok {
			return v
		}
	}
	if fallback != "" {
		return fallback
	}
	if i, ok := c.menuIdx[DefaultPalette]; ok {
		if v := c.Menu[i].Roles[role]; v != "" {
			return v
		}
	}
	return DefaultRoleColor
}

// PageTheme derives the page chrome roles for palette and applies any
// per-page overrides the catalog defines.
func (c *Catalog) PageTheme(palette, page string) Roles {
	theme := make(Roles, len(PageRoleNames))
	for _, role := range PageRoleNames {
		theme[role] = c.MenuColor(palette, pageRoleSource[role], "")
	}
	for role, v := range c.Pages[page][palette] {
		theme[role] = v
	}
	return theme
}

func (c *Catalog) PageColor(palette, page, role, fallback string) string {
	if v, ok := c.PageTheme(palette, page)[role]; ok {
		return v
	}
	return fallback
}

// PowerAccent is the badge accent color for a power-up on the choice cards.
func (c *Catalog) PowerAccent(palette string, t powerup.Type, fallback string) string {
	switch t {
	case powerup.Double:
		return c.MenuColor(palette, "actionInk", fallback)
	case powerup.Diamond:
		return c.MenuColor(palette, "hintCard", fallback)
	case powerup.Laser:
		return c.MenuColor(palette, "borderSecondary", fallback)
	case powerup.Shield:
		return c.MenuColor(palette, "secondaryInk", fallback)
	case powerup.Portal:
		return c.MenuColor(palette, "borderPrimary", fallback)
	default:
		return c.MenuColor(palette, "titleInk", fallback)
	}
}

func (c *Catalog) RarityAccent(palette string, tier powerup.Tier, fallback string) string {
	switch tier {
	case powerup.Epic:
		return c.MenuColor(palette, "hintCard", fallback)
	case powerup.Rare:
		return c.MenuColor(palette, "borderPrimary", fallback)
	case powerup.Uncommon:
		return c.MenuColor(palette, "secondaryInk", fallback)
	default:
		return c.MenuColor(palette, "titleInk", fallback)
	}
}

// ReadableOn picks the palette's title or action ink for text drawn on bg,
// using the simple luminance cutoff the board overlay uses.
func (c *Catalog) ReadableOn(palette, bg string) string {
	return colorutil.ReadableText(bg, c.MenuColor(palette, "titleInk", ""), c.MenuColor(palette, "actionInk", ""))
}
