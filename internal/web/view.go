package web

import (
	"fmt"
	"html/template"

	"github.com/phyten/gbtheme/internal/catalog"
	"github.com/phyten/gbtheme/internal/colorutil"
)

type swatchView struct {
	Role string
	Hex  string
	Ink  string
}

type paletteView struct {
	Name     string
	Ink      string
	Bg       string
	Legacy   []string
	Swatches []swatchView
}

type shellView struct {
	Name     string
	Base     string
	Brand    string
	Subtitle string
	Contrast string
	Swatches []swatchView
}

type pageData struct {
	Static     bool
	StylesPath string
	ScriptPath string
	InlineCSS  template.CSS
	Palettes   []paletteView
	Shells     []shellView
}

func buildPage(cat *catalog.Catalog) pageData {
	var data pageData
	for _, p := range cat.Menu {
		bg := cat.MenuColor(p.Name, "cardPrimary", "")
		view := paletteView{
			Name:   p.Name,
			Bg:     bg,
			Ink:    cat.MenuColor(p.Name, "titleInk", ""),
			Legacy: p.Legacy,
		}
		view.Swatches = swatches(p.Roles.Ordered(catalog.MenuRoleNames))
		data.Palettes = append(data.Palettes, view)
	}
	for _, name := range cat.ShellNames() {
		theme := cat.ShellTheme(name, "")
		data.Shells = append(data.Shells, shellView{
			Name:     name,
			Base:     theme["shellBase"],
			Brand:    theme["brandInk"],
			Subtitle: theme["subtitleInk"],
			Contrast: fmt.Sprintf("%.2f", colorutil.Contrast(theme["brandInk"], theme["shellBase"])),
			Swatches: swatches(theme.Ordered(catalog.ShellRoleNames)),
		})
	}
	return data
}

func swatches(pairs [][2]string) []swatchView {
	out := make([]swatchView, 0, len(pairs))
	for _, kv := range pairs {
		out = append(out, swatchView{
			Role: kv[0],
			Hex:  kv[1],
			Ink:  colorutil.PickReadableInk(kv[1], "#000000", "#ffffff"),
		})
	}
	return out
}
