// Package render draws palette, page and shell cards for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/phyten/gbtheme/internal/catalog"
	"github.com/phyten/gbtheme/internal/colorutil"
	"github.com/phyten/gbtheme/internal/termcolor"
)

const swatchWidth = 6

type Cards struct {
	r *lipgloss.Renderer
}

// New returns a card renderer for w. When enabled is false cards are drawn
// without any escape sequences.
func New(w io.Writer, profile termcolor.Profile, enabled bool) *Cards {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenvProfile(profile, enabled))
	return &Cards{r: r}
}

func termenvProfile(p termcolor.Profile, enabled bool) termenv.Profile {
	if !enabled {
		return termenv.Ascii
	}
	switch p {
	case termcolor.ProfileTrueColor:
		return termenv.TrueColor
	case termcolor.ProfileANSI256:
		return termenv.ANSI256
	default:
		return termenv.ANSI
	}
}

// Palette draws a menu palette: its roles as swatches framed in borderPrimary
// with a title bar in cardPrimary/titleInk.
func (c *Cards) Palette(p catalog.MenuPalette) string {
	bg := roleOr(p.Roles, "cardPrimary", catalog.DefaultRoleColor)
	title := c.r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(roleOr(p.Roles, "titleInk", fallbackInk(bg)))).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Render(p.Name)

	lines := []string{title}
	lines = append(lines, c.swatchRows(p.Roles.Ordered(catalog.MenuRoleNames))...)
	if len(p.Legacy) > 0 {
		lines = append(lines, "", c.strip(p.Legacy))
	}
	return c.frame(roleOr(p.Roles, "borderPrimary", bg), lines)
}

// Page draws the resolved page theme for palette and page.
func (c *Cards) Page(palette, page string, theme catalog.Roles) string {
	bg := roleOr(theme, "pageBg", catalog.DefaultRoleColor)
	title := c.r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(roleOr(theme, "title", fallbackInk(bg)))).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Render(fmt.Sprintf("%s / %s", palette, page))

	lines := []string{title}
	lines = append(lines, c.swatchRows(theme.Ordered(catalog.PageRoleNames))...)
	return c.frame(roleOr(theme, "cardBorder", bg), lines)
}

// Shell draws a derived shell theme. The brand line is printed in brandInk on
// shellBase so the derived contrast is visible.
func (c *Cards) Shell(name string, theme catalog.Roles) string {
	base := roleOr(theme, "shellBase", catalog.DefaultShellBase)
	brand := c.r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(roleOr(theme, "brandInk", fallbackInk(base)))).
		Background(lipgloss.Color(base)).
		Padding(0, 1).
		Render(name)
	subtitle := c.r.NewStyle().
		Foreground(lipgloss.Color(roleOr(theme, "subtitleInk", fallbackInk(base)))).
		Background(lipgloss.Color(base)).
		Padding(0, 1).
		Render(fmt.Sprintf("contrast %.2f", colorutil.Contrast(theme["brandInk"], base)))

	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, brand, subtitle)}
	lines = append(lines, c.swatchRows(theme.Ordered(catalog.ShellRoleNames))...)
	return c.frame(roleOr(theme, "shellBorder", base), lines)
}

func (c *Cards) swatchRows(pairs [][2]string) []string {
	width := 0
	for _, kv := range pairs {
		if len(kv[0]) > width {
			width = len(kv[0])
		}
	}
	label := c.r.NewStyle().Width(width + 2)
	rows := make([]string, 0, len(pairs))
	for _, kv := range pairs {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			label.Render(kv[0]),
			c.chip(kv[1], swatchWidth),
			" "+kv[1],
		))
	}
	return rows
}

func (c *Cards) strip(colors []string) string {
	chips := make([]string, 0, len(colors))
	for _, hex := range colors {
		chips = append(chips, c.chip(hex, 4))
	}
	return strings.Join(chips, "")
}

func (c *Cards) chip(hex string, width int) string {
	if c.r.ColorProfile() == termenv.Ascii {
		return strings.Repeat("#", width)
	}
	return c.r.NewStyle().Background(lipgloss.Color(hex)).Render(strings.Repeat(" ", width))
}

func (c *Cards) frame(border string, lines []string) string {
	return c.r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func roleOr(roles catalog.Roles, key, fallback string) string {
	if v, ok := roles[key]; ok && v != "" {
		return v
	}
	return fallback
}

func fallbackInk(bg string) string {
	return colorutil.ReadableText(bg, "#000000", "#ffffff")
}
