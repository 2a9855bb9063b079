package config

// ThemeConfig is one layer of theme selection. Nil fields leave the value
// from lower layers untouched.
type ThemeConfig struct {
	Palette    *string `yaml:"palette" toml:"palette" json:"palette"`
	Page       *string `yaml:"page" toml:"page" json:"page"`
	Shell      *string `yaml:"shell" toml:"shell" json:"shell"`
	ShellColor *string `yaml:"shell_color" toml:"shell_color" json:"shell_color"`
	Catalog    *string `yaml:"catalog" toml:"catalog" json:"catalog"`
}

type UIConfig struct {
	Color    *string `yaml:"color" toml:"color" json:"color"`
	Output   *string `yaml:"output" toml:"output" json:"output"`
	LogLevel *string `yaml:"log_level" toml:"log_level" json:"log_level"`
	LogFile  *string `yaml:"log_file" toml:"log_file" json:"log_file"`
}

type Config struct {
	Theme ThemeConfig `yaml:"theme" toml:"theme" json:"theme"`
	UI    UIConfig    `yaml:"ui" toml:"ui" json:"ui"`
}

// Settings is the fully merged configuration.
type Settings struct {
	Palette    string `json:"palette"`
	Page       string `json:"page"`
	Shell      string `json:"shell"`
	ShellColor string `json:"shell_color"`
	Catalog    string `json:"catalog"`
	Color      string `json:"color"`
	Output     string `json:"output"`
	LogLevel   string `json:"log_level"`
	LogFile    string `json:"log_file"`
}

func Defaults() Settings {
	return Settings{
		Palette:  "Original DMG",
		Page:     "catalog",
		Shell:    "Matte Silver",
		Color:    "auto",
		Output:   "table",
		LogLevel: "warn",
	}
}
