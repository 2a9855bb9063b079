package config

import "strings"

// Merge applies layers over base in order; later layers win.
func Merge(base Settings, layers ...Config) Settings {
	out := base
	for _, layer := range layers {
		out.Palette = resolve(out.Palette, layer.Theme.Palette)
		out.Page = resolve(out.Page, layer.Theme.Page)
		out.Shell = resolve(out.Shell, layer.Theme.Shell)
		out.ShellColor = resolve(out.ShellColor, layer.Theme.ShellColor)
		out.Catalog = resolve(out.Catalog, layer.Theme.Catalog)
		out.Color = resolve(out.Color, layer.UI.Color)
		out.Output = resolve(out.Output, layer.UI.Output)
		out.LogLevel = resolve(out.LogLevel, layer.UI.LogLevel)
		out.LogFile = resolve(out.LogFile, layer.UI.LogFile)
	}
	return out
}

func resolve(def string, v *string) string {
	if v == nil {
		return def
	}
	return strings.TrimSpace(*v)
}

// StringFlag returns a pointer to v when the flag was set on the command line.
func StringFlag(v string, set bool) *string {
	if !set {
		return nil
	}
	return &v
}
