package config

import "strings"

func FromEnv(getenv func(string) string) Config {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}

	setString(&cfg.Theme.Palette, "GBTHEME_PALETTE")
	setString(&cfg.Theme.Page, "GBTHEME_PAGE")
	setString(&cfg.Theme.Shell, "GBTHEME_SHELL")
	setString(&cfg.Theme.ShellColor, "GBTHEME_SHELL_COLOR")
	setString(&cfg.Theme.Catalog, "GBTHEME_CATALOG")
	setString(&cfg.UI.Color, "GBTHEME_COLOR")
	setString(&cfg.UI.Output, "GBTHEME_OUTPUT")
	setString(&cfg.UI.LogLevel, "GBTHEME_LOG_LEVEL")
	setString(&cfg.UI.LogFile, "GBTHEME_LOG_FILE")
	return cfg
}
