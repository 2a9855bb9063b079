package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

const usage = `usage: gbtheme <command> [flags] [args]

commands:
  palettes [name]      list menu palettes, or the roles of one palette
  page [palette] [page]
                       resolved page theme roles
  shell [name]         shell skin with derived ink colors
  powerups [name]      power-up metadata and accents
  contrast <a> <b>     WCAG contrast ratio between two colors
  ink <bg>             readable ink for a background
  card                 draw palette, page and shell cards
  preview              write a static HTML preview
  serve                serve the HTML preview and JSON API

Run "gbtheme <command> -h" for command flags.
`

type command func(e *env, args []string) error

var commands = map[string]command{
	"palettes": palettesCmd,
	"page":     pageCmd,
	"shell":    shellCmd,
	"powerups": powerupsCmd,
	"contrast": contrastCmd,
	"ink":      inkCmd,
	"card":     cardCmd,
	"preview":  previewCmd,
	"serve":    serveCmd,
}

func main() {
	log.SetFlags(0)
	e := systemEnv()
	if err := run(e, os.Args[1:]); err != nil {
		log.Printf("gbtheme: %v", err)
		var uerr usageError
		if errors.As(err, &uerr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

type usageError struct{ msg string }

func (u usageError) Error() string { return u.msg }

func run(e *env, args []string) error {
	if len(args) == 0 {
		_, _ = io.WriteString(e.stderr, usage)
		return usageError{"missing command"}
	}
	name := args[0]
	switch name {
	case "-h", "-help", "--help", "help":
		_, _ = io.WriteString(e.stdout, usage)
		return nil
	}
	cmd, ok := commands[name]
	if !ok {
		_, _ = io.WriteString(e.stderr, usage)
		return usageError{fmt.Sprintf("unknown command %q", name)}
	}
	err := cmd(e, args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}
