package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var themeKeyMap = map[string]string{
	"palette":      "palette",
	"skin":         "palette",
	"page":         "page",
	"shell":        "shell",
	"shell_color":  "shell_color",
	"catalog":      "catalog",
	"catalog_file": "catalog",
}

var uiKeyMap = map[string]string{
	"color":     "color",
	"output":    "output",
	"format":    "output",
	"log_level": "log_level",
	"log_file":  "log_file",
}

func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		if decodeErr := json.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

// decodeConfigMap accepts both sectioned ("theme:", "ui:") and flat keys.
func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	themeSection := make(map[string]string)
	uiSection := make(map[string]string)

	for key, value := range raw {
		norm := normalizeKey(key)
		switch norm {
		case "theme", "ui":
			sub, err := toStringKeyMap(value)
			if err != nil {
				return cfg, fmt.Errorf("%s: %w", norm, err)
			}
			allowed, dst := themeKeyMap, themeSection
			if norm == "ui" {
				allowed, dst = uiKeyMap, uiSection
			}
			for subKey, subValue := range sub {
				canonical, ok := allowed[normalizeKey(subKey)]
				if !ok {
					return cfg, fmt.Errorf("unknown %s key: %s", norm, subKey)
				}
				str, err := expectString(subValue, subKey)
				if err != nil {
					return cfg, fmt.Errorf("%s: %w", norm, err)
				}
				dst[canonical] = str
			}
		default:
			str, err := expectString(value, key)
			if canonical, ok := themeKeyMap[norm]; ok {
				if err != nil {
					return cfg, err
				}
				themeSection[canonical] = str
				continue
			}
			if canonical, ok := uiKeyMap[norm]; ok {
				if err != nil {
					return cfg, err
				}
				uiSection[canonical] = str
				continue
			}
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}
	}

	assign := func(section map[string]string, key string, dst **string) {
		if v, ok := section[key]; ok {
			val := v
			*dst = &val
		}
	}
	assign(themeSection, "palette", &cfg.Theme.Palette)
	assign(themeSection, "page", &cfg.Theme.Page)
	assign(themeSection, "shell", &cfg.Theme.Shell)
	assign(themeSection, "shell_color", &cfg.Theme.ShellColor)
	assign(themeSection, "catalog", &cfg.Theme.Catalog)
	assign(uiSection, "color", &cfg.UI.Color)
	assign(uiSection, "output", &cfg.UI.Output)
	assign(uiSection, "log_level", &cfg.UI.LogLevel)
	assign(uiSection, "log_file", &cfg.UI.LogFile)
	return cfg, nil
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

func toStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	norm = strings.ReplaceAll(norm, "-", "_")
	return norm
}
