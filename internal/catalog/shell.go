package catalog

import "github.com/phyten/gbtheme/internal/colorutil"

var ShellRoleNames = []string{
	"shellBase", "shellBorder", "shellHighlight", "shellShade", "brandInk",
	"subtitleInk", "buttonLabelInk", "logoAccent", "logoSecondary",
	"bezelBase", "bezelEdge", "bezelInner", "bezelInnerBorder", "labelInk",
	"grillInk", "wheelTrackA", "wheelTrackB", "wheelBody", "wheelBodyDark",
	"wheelBodyLight",
}

// Thresholds and blend amounts for shell ink derivation. They were tuned by
// eye against every skin; keep the exact values.
const (
	BrandInkMinContrast       = 4.6
	SubtitleSoftenAmount      = 0.24
	SubtitleMinContrast       = 3.4
	ButtonLabelMinContrast    = 5.0
	BezelLabelMinContrast     = 4.3
	LogoAccentMinContrast     = 3.2
	LogoSecondarySoftenAmount = 0.42
	LogoSecondaryMinContrast  = 2.7
)

const (
	brandDarkInk       = "#1b1724"
	brandLightInk      = "#f4f1fb"
	subtitleLightInk   = "#ece8f5"
	buttonDarkInk      = "#16131d"
	buttonLightInk     = "#faf7ff"
	bezelDarkInk       = "#121820"
	bezelLightInk      = "#dce4ee"
	logoBaseAccent     = "#4f477b"
	logoLightAccent    = "#6f63a6"
	logoSecondaryLight = "#8377ba"
)

// fallbackShell is used for shells the catalog does not know; shellBase is
// filled in from the caller's shell color.
var fallbackShell = Roles{
	"shellBorder":      "#4b5a66",
	"shellHighlight":   "#6f7f8e",
	"shellShade":       "#465562",
	"brandInk":         "#1e2830",
	"subtitleInk":      "#2c3640",
	"bezelBase":        "#3f4652",
	"bezelEdge":        "#21262d",
	"bezelInner":       "#12161d",
	"bezelInnerBorder": "#5d6470",
	"labelInk":         "#9097a5",
	"grillInk":         "#4c515b",
	"wheelTrackA":      "#2b3a48",
	"wheelTrackB":      "#22303d",
	"wheelBody":        "#657284",
	"wheelBodyDark":    "#4a5567",
	"wheelBodyLight":   "#78859b",
}

// ShellTheme resolves the device shell roles for shell and derives the ink
// colors printed on it so they stay legible on the shell and bezel colors.
// Unknown shells use a neutral skin built around shellColor.
func (c *Catalog) ShellTheme(shell, shellColor string) Roles {
	var theme Roles
	if i, ok := c.shellIdx[shell]; ok {
		theme = c.Shells[i].Roles.clone()
	} else {
		theme = fallbackShell.clone()
		theme["shellBase"] = shellColor
		if shellColor == "" {
			theme["shellBase"] = DefaultShellBase
		}
	}
	deriveShellInks(theme)
	return theme
}

func deriveShellInks(theme Roles) {
	base := theme["shellBase"]
	primary := colorutil.EnsureContrast(theme["brandInk"], base, BrandInkMinContrast, brandDarkInk, brandLightInk)
	secondary := colorutil.SoftenInk(primary, base, SubtitleSoftenAmount, SubtitleMinContrast, primary, subtitleLightInk)
	button := colorutil.EnsureContrast(primary, base, ButtonLabelMinContrast, buttonDarkInk, buttonLightInk)
	label := colorutil.EnsureContrast(theme["labelInk"], theme["bezelBase"], BezelLabelMinContrast, bezelDarkInk, bezelLightInk)
	logo := colorutil.EnsureContrast(logoBaseAccent, base, LogoAccentMinContrast, primary, logoLightAccent)
	logoSecondary := colorutil.SoftenInk(logo, base, LogoSecondarySoftenAmount, LogoSecondaryMinContrast, primary, logoSecondaryLight)

	theme["brandInk"] = primary
	theme["subtitleInk"] = secondary
	theme["buttonLabelInk"] = button
	theme["labelInk"] = label
	theme["logoAccent"] = logo
	theme["logoSecondary"] = logoSecondary
}
