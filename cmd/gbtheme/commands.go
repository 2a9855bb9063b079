package main

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/phyten/gbtheme/internal/catalog"
	"github.com/phyten/gbtheme/internal/colorutil"
	"github.com/phyten/gbtheme/internal/output"
	"github.com/phyten/gbtheme/internal/powerup"
	"github.com/phyten/gbtheme/internal/termcolor"
	"github.com/phyten/gbtheme/internal/textutil"
)

const descriptionWidth = 48

func palettesCmd(e *env, args []string) error {
	fs, common := newFlagSet(e, "palettes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := open(e, fs, common)
	if err != nil {
		return err
	}
	defer func() { _ = s.log.Sync() }()

	if fs.NArg() > 0 {
		p, err := s.cat.Palette(strings.Join(fs.Args(), " "))
		if err != nil {
			return err
		}
		return s.write(rolesTable(p.Roles.Ordered(catalog.MenuRoleNames)))
	}

	t := output.Table{Headers: []string{"Index", "Name", "Legacy"}}
	for i, p := range s.cat.Menu {
		t.Append(strconv.Itoa(i), p.Name, strings.Join(p.Legacy, " "))
	}
	return s.write(t)
}

func pageCmd(e *env, args []string) error {
	fs, common := newFlagSet(e, "page")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := open(e, fs, common)
	if err != nil {
		return err
	}
	defer func() { _ = s.log.Sync() }()

	palette, page := s.settings.Palette, s.settings.Page
	if fs.NArg() > 0 {
		palette = fs.Arg(0)
	}
	if fs.NArg() > 1 {
		page = fs.Arg(1)
	}
	p, err := s.cat.Palette(palette)
	if err != nil {
		return err
	}
	return s.write(rolesTable(s.cat.PageTheme(p.Name, page).Ordered(catalog.PageRoleNames)))
}

func shellCmd(e *env, args []string) error {
	fs, common := newFlagSet(e, "shell")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := open(e, fs, common)
	if err != nil {
		return err
	}
	defer func() { _ = s.log.Sync() }()

	name := s.settings.Shell
	if fs.NArg() > 0 {
		name = strings.Join(fs.Args(), " ")
	}
	if skin, err := s.cat.Shell(name); err == nil {
		name = skin.Name
	} else if s.settings.ShellColor == "" {
		return err
	} else {
		s.log.Info("shell not in catalog, using fallback skin", zap.String("shell", name), zap.String("shell_color", s.settings.ShellColor))
	}

	theme := s.cat.ShellTheme(name, s.settings.ShellColor)
	base := theme["shellBase"]
	t := output.Table{Headers: []string{"Role", "Color", "Contrast"}}
	for _, kv := range theme.Ordered(catalog.ShellRoleNames) {
		t.Append(kv[0], kv[1], ratio(colorutil.Contrast(kv[1], base)))
	}
	// the contrast column is printed in the role color over the shell base
	onBase := func(row, col int, _ string) (termcolor.Style, bool) {
		if col != 2 {
			return termcolor.Style{}, false
		}
		return termcolor.Ink(t.Rows[row][1], base), true
	}
	return s.write(t, onBase)
}

func powerupsCmd(e *env, args []string) error {
	fs, common := newFlagSet(e, "powerups")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := open(e, fs, common)
	if err != nil {
		return err
	}
	defer func() { _ = s.log.Sync() }()

	types := powerup.All()
	if fs.NArg() > 0 {
		t, err := powerup.Parse(strings.Join(fs.Args(), " "))
		if err != nil {
			return err
		}
		types = []powerup.Type{t}
	}
	p, err := s.cat.Palette(s.settings.Palette)
	if err != nil {
		return err
	}

	t := output.Table{Headers: []string{"ID", "Name", "Glyph", "Choice", "Rarity", "Accent", "RarityAccent", "Description"}}
	for _, typ := range types {
		choice := typ.Choice()
		desc := choice.Description
		if s.settings.Output == "table" {
			desc = textutil.TruncateByWidth(desc, descriptionWidth, "…")
		}
		t.Append(
			strconv.Itoa(int(typ)),
			choice.Name,
			typ.Glyph(),
			typ.ChoiceGlyph(),
			typ.RarityName(),
			s.cat.PowerAccent(p.Name, typ, ""),
			s.cat.RarityAccent(p.Name, typ.Rarity(), ""),
			desc,
		)
	}
	return s.write(t)
}

func contrastCmd(e *env, args []string) error {
	fs, common := newFlagSet(e, "contrast")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return usageError{"contrast needs two colors"}
	}
	a, b := normalizeHexArg(fs.Arg(0)), normalizeHexArg(fs.Arg(1))
	for _, v := range []string{a, b} {
		if !colorutil.ValidHex(v) {
			return fmt.Errorf("invalid color %q (want #rrggbb)", v)
		}
	}
	s, err := open(e, fs, common)
	if err != nil {
		return err
	}
	defer func() { _ = s.log.Sync() }()

	r := colorutil.Contrast(a, b)
	t := output.Table{Headers: []string{"A", "B", "Ratio", "AA", "AAA"}}
	t.Append(colorutil.ParseHex(a).Hex(), colorutil.ParseHex(b).Hex(), ratio(r), pass(r >= 4.5), pass(r >= 7))
	return s.write(t)
}

func inkCmd(e *env, args []string) error {
	fs, common := newFlagSet(e, "ink")
	dark := fs.String("dark", "#000000", "dark ink candidate")
	light := fs.String("light", "#ffffff", "light ink candidate")
	candidate := fs.String("candidate", "", "preferred ink, kept when it meets --min")
	minRatio := fs.Float64("min", 4.5, "minimum contrast for --candidate")
	soften := fs.Float64("soften", 0, "blend the chosen ink toward the background by this amount (0..1)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := open(e, fs, common)
	if err != nil {
		return err
	}
	defer func() { _ = s.log.Sync() }()

	bg := termcolorBackground(s)
	if fs.NArg() > 0 {
		bg = normalizeHexArg(fs.Arg(0))
	}
	for _, v := range []string{bg, *dark, *light} {
		if !colorutil.ValidHex(v) {
			return fmt.Errorf("invalid color %q (want #rrggbb)", v)
		}
	}

	ink := colorutil.PickReadableInk(bg, *dark, *light)
	if *candidate != "" {
		ink = colorutil.EnsureContrast(normalizeHexArg(*candidate), bg, *minRatio, *dark, *light)
	}
	if *soften > 0 {
		ink = colorutil.SoftenInk(ink, bg, *soften, *minRatio, *dark, *light)
	}

	t := output.Table{Headers: []string{"Background", "Ink", "Ratio", "Simple", "Muted", "Secondary"}}
	t.Append(
		colorutil.ParseHex(bg).Hex(),
		colorutil.ParseHex(ink).Hex(),
		ratio(colorutil.Contrast(ink, bg)),
		colorutil.ReadableText(bg, *dark, *light),
		colorutil.ReadableMutedText(bg, *dark, *light).CSS(),
		colorutil.ReadableSecondaryText(bg, *dark, *light).CSS(),
	)
	return s.write(t)
}

// termcolorBackground guesses the terminal background for ink without an argument.
func termcolorBackground(s *session) string {
	return termcolor.DetectScheme(termcolor.EnvMap(s.environ)).Background()
}

func rolesTable(pairs [][2]string) output.Table {
	t := output.Table{Headers: []string{"Role", "Color"}}
	for _, kv := range pairs {
		t.Append(kv[0], kv[1])
	}
	return t
}

// normalizeHexArg accepts colors without the leading '#', which shells
// would otherwise treat as a comment.
func normalizeHexArg(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "#") {
		return "#" + v
	}
	return v
}

func ratio(r float64) string {
	return strconv.FormatFloat(r, 'f', 2, 64)
}

func pass(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
