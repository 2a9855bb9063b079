package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/phyten/gbtheme/internal/catalog"
	"github.com/phyten/gbtheme/internal/colorutil"
	"github.com/phyten/gbtheme/internal/config"
	"github.com/phyten/gbtheme/internal/logger"
	"github.com/phyten/gbtheme/internal/output"
	"github.com/phyten/gbtheme/internal/termcolor"
)

// env is everything a command reads from the process.
type env struct {
	stdout  io.Writer
	stderr  io.Writer
	tty     *os.File
	getenv  func(string) string
	environ []string
	cwd     string
}

func systemEnv() *env {
	cwd, _ := os.Getwd()
	return &env{
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		tty:     os.Stdout,
		getenv:  os.Getenv,
		environ: os.Environ(),
		cwd:     cwd,
	}
}

// commonFlags are accepted by every command and form the flag layer of the
// configuration.
type commonFlags struct {
	config     string
	palette    string
	page       string
	shell      string
	shellColor string
	catalog    string
	color      string
	output     string
	logLevel   string
	logFile    string
}

func newFlagSet(e *env, name string) (*flag.FlagSet, *commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	c := &commonFlags{}
	fs.StringVar(&c.config, "config", "", "config file (default: search .gbtheme.*, XDG, home)")
	fs.StringVar(&c.palette, "palette", "", "menu palette name")
	fs.StringVar(&c.page, "page", "", "page name for page overrides")
	fs.StringVar(&c.shell, "shell", "", "shell skin name")
	fs.StringVar(&c.shellColor, "shell-color", "", "base color for shells missing from the catalog")
	fs.StringVar(&c.catalog, "catalog", "", "catalog file (.yaml, .toml, .json, .js)")
	fs.StringVar(&c.color, "color", "", "auto|always|never")
	fs.StringVar(&c.output, "output", "", "table|json|ndjson|csv|markdown")
	fs.StringVar(&c.output, "o", "", "shorthand for --output")
	fs.StringVar(&c.logLevel, "log-level", "", "debug|info|warn|error")
	fs.StringVar(&c.logFile, "log-file", "", "also write logs to this file")
	return fs, c
}

func (c *commonFlags) layer(fs *flag.FlagSet) config.Config {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return config.Config{
		Theme: config.ThemeConfig{
			Palette:    config.StringFlag(c.palette, set["palette"]),
			Page:       config.StringFlag(c.page, set["page"]),
			Shell:      config.StringFlag(c.shell, set["shell"]),
			ShellColor: config.StringFlag(c.shellColor, set["shell-color"]),
			Catalog:    config.StringFlag(c.catalog, set["catalog"]),
		},
		UI: config.UIConfig{
			Color:    config.StringFlag(c.color, set["color"]),
			Output:   config.StringFlag(c.output, set["output"] || set["o"]),
			LogLevel: config.StringFlag(c.logLevel, set["log-level"]),
			LogFile:  config.StringFlag(c.logFile, set["log-file"]),
		},
	}
}

// session is the resolved state a command runs with.
type session struct {
	*env
	settings config.Settings
	cat      *catalog.Catalog
	log      *zap.Logger
	colors   bool
	profile  termcolor.Profile
}

// open layers defaults, config file, environment and flags, then loads the
// catalog and builds the logger.
func open(e *env, fs *flag.FlagSet, c *commonFlags) (*session, error) {
	explicit := c.config
	if explicit == "" {
		explicit = e.getenv("GBTHEME_CONFIG")
	}
	path, source, err := config.Find(e.cwd, explicit, e.getenv("XDG_CONFIG_HOME"), e.getenv("HOME"))
	if err != nil {
		return nil, fmt.Errorf("find config: %w", err)
	}
	var layers []config.Config
	if path != "" {
		fileCfg, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		layers = append(layers, fileCfg)
	}
	layers = append(layers, config.FromEnv(e.getenv), c.layer(fs))
	settings, err := config.Normalize(config.Merge(config.Defaults(), layers...))
	if err != nil {
		return nil, err
	}

	lcfg := logger.DefaultConfig()
	lcfg.Level = settings.LogLevel
	lcfg.File = settings.LogFile
	lcfg.Console = e.stderr
	log, err := logger.New(lcfg)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	if path != "" {
		log.Debug("config loaded", zap.String("path", path), zap.String("source", source))
	}

	cat := catalog.Default()
	if settings.Catalog != "" {
		if cat, err = catalog.Load(settings.Catalog); err != nil {
			return nil, err
		}
		log.Debug("catalog loaded", zap.String("path", settings.Catalog), zap.Int("palettes", len(cat.Menu)), zap.Int("shells", len(cat.Shells)))
	}

	vars := termcolor.EnvMap(e.environ)
	mode, _ := termcolor.ParseMode(settings.Color)
	return &session{
		env:      e,
		settings: settings,
		cat:      cat,
		log:      log,
		colors:   termcolor.Enabled(mode, e.tty, vars),
		profile:  termcolor.DetectProfile(vars),
	}, nil
}

// cellStyle picks a terminal style for a table cell; ok is false to leave it plain.
type cellStyle func(row, col int, cell string) (style termcolor.Style, ok bool)

func swatchCells(_, _ int, cell string) (termcolor.Style, bool) {
	if strings.HasPrefix(cell, "#") && colorutil.ValidHex(cell) {
		return termcolor.Swatch(cell), true
	}
	return termcolor.Style{}, false
}

// write renders t in the configured format. On a color terminal the first
// matching style paints each cell; hex cells fall back to a swatch.
func (s *session) write(t output.Table, styles ...cellStyle) error {
	var decorate output.Decorator
	if s.colors && s.settings.Output == "table" {
		styles = append(styles, swatchCells)
		decorate = func(row, col int, cell string) string {
			for _, style := range styles {
				if st, ok := style(row, col, cell); ok {
					return termcolor.Apply(st, cell, s.profile, true)
				}
			}
			return cell
		}
	}
	return output.Write(s.stdout, s.settings.Output, t, decorate)
}
