package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/phyten/gbtheme/internal/render"
)

func cardCmd(e *env, args []string) error {
	fs, common := newFlagSet(e, "card")
	only := fs.String("only", "", "draw just one card: palette|page|shell")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := open(e, fs, common)
	if err != nil {
		return err
	}
	defer func() { _ = s.log.Sync() }()

	kind := strings.ToLower(strings.TrimSpace(*only))
	switch kind {
	case "", "palette", "page", "shell":
	default:
		return usageError{fmt.Sprintf("invalid --only %q (want palette|page|shell)", *only)}
	}

	p, err := s.cat.Palette(s.settings.Palette)
	if err != nil {
		return err
	}
	shell := s.settings.Shell
	if skin, err := s.cat.Shell(shell); err == nil {
		shell = skin.Name
	} else if s.settings.ShellColor == "" {
		return err
	}

	cards := render.New(s.stdout, s.profile, s.colors)
	var out []string
	if kind == "" || kind == "palette" {
		out = append(out, cards.Palette(p))
	}
	if kind == "" || kind == "page" {
		out = append(out, cards.Page(p.Name, s.settings.Page, s.cat.PageTheme(p.Name, s.settings.Page)))
	}
	if kind == "" || kind == "shell" {
		out = append(out, cards.Shell(shell, s.cat.ShellTheme(shell, s.settings.ShellColor)))
	}
	_, err = io.WriteString(s.stdout, strings.Join(out, "\n")+"\n")
	return err
}
