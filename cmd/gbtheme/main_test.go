package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testEnv(t *testing.T, vars map[string]string) (*env, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	if vars == nil {
		vars = map[string]string{}
	}
	if _, ok := vars["HOME"]; !ok {
		vars["HOME"] = dir
	}
	var environ []string
	for k, v := range vars {
		environ = append(environ, k+"="+v)
	}
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &env{
		stdout:  stdout,
		stderr:  stderr,
		getenv:  func(k string) string { return vars[k] },
		environ: environ,
		cwd:     dir,
	}, stdout, stderr
}

func TestRunRequiresCommand(t *testing.T) {
	e, _, stderr := testEnv(t, nil)
	err := run(e, nil)
	var uerr usageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if !strings.Contains(stderr.String(), "usage: gbtheme") {
		t.Fatalf("usage not printed: %q", stderr.String())
	}
}

func TestRunUnknownCommand(t *testing.T) {
	e, _, _ := testEnv(t, nil)
	if err := run(e, []string{"paint"}); err == nil {
		t.Fatal("expected error for unknown command")
	}
}

func TestCommandHelpIsNotAnError(t *testing.T) {
	e, _, stderr := testEnv(t, nil)
	if err := run(e, []string{"shell", "-h"}); err != nil {
		t.Fatalf("help returned %v", err)
	}
	if !strings.Contains(stderr.String(), "-shell-color") {
		t.Fatalf("flag help missing: %q", stderr.String())
	}
}

func TestPalettesListsNames(t *testing.T) {
	e, stdout, _ := testEnv(t, nil)
	if err := run(e, []string{"palettes"}); err != nil {
		t.Fatalf("palettes: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if !strings.HasPrefix(lines[0], "Index") {
		t.Fatalf("missing header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Original DMG") || !strings.Contains(lines[1], "#213319") {
		t.Fatalf("first palette row unexpected: %q", lines[1])
	}
}

func TestPalettesUnknownSuggests(t *testing.T) {
	e, _, _ := testEnv(t, nil)
	err := run(e, []string{"palettes", "Orignal", "DMG"})
	if err == nil || !strings.Contains(err.Error(), "Original DMG") {
		t.Fatalf("expected suggestion, got %v", err)
	}
}

func TestShellJSONDerivesInks(t *testing.T) {
	e, stdout, _ := testEnv(t, nil)
	if err := run(e, []string{"shell", "-o", "json", "Crimson"}); err != nil {
		t.Fatalf("shell: %v", err)
	}
	var rows []map[string]string
	if err := json.Unmarshal(stdout.Bytes(), &rows); err != nil {
		t.Fatalf("decode: %v\n%s", err, stdout.String())
	}
	got := map[string]string{}
	for _, r := range rows {
		got[r["role"]] = r["color"]
	}
	want := map[string]string{
		"brandInk":       "#1b1724",
		"subtitleInk":    "#52111b",
		"buttonLabelInk": "#16131d",
		"logoSecondary":  "#7b0d15",
	}
	for role, hex := range want {
		if got[role] != hex {
			t.Fatalf("%s = %q, want %q", role, got[role], hex)
		}
	}
}

func TestShellFallbackNeedsColor(t *testing.T) {
	e, _, _ := testEnv(t, nil)
	if err := run(e, []string{"shell", "Nowhere"}); err == nil {
		t.Fatal("expected unknown shell error")
	}
	e, stdout, _ := testEnv(t, map[string]string{"GBTHEME_SHELL_COLOR": "000000"})
	if err := run(e, []string{"shell", "-o", "csv", "Nowhere"}); err != nil {
		t.Fatalf("shell with color: %v", err)
	}
	if !strings.Contains(stdout.String(), "brandInk,#f4f1fb,") {
		t.Fatalf("fallback skin not derived: %q", stdout.String())
	}
}

func TestContrastCommand(t *testing.T) {
	e, stdout, _ := testEnv(t, nil)
	if err := run(e, []string{"contrast", "-o", "csv", "000000", "#FFFFFF"}); err != nil {
		t.Fatalf("contrast: %v", err)
	}
	want := "A,B,Ratio,AA,AAA\r\n#000000,#ffffff,21.00,pass,pass\r\n"
	if stdout.String() != want {
		t.Fatalf("got %q, want %q", stdout.String(), want)
	}
}

func TestContrastRejectsBadColor(t *testing.T) {
	e, _, _ := testEnv(t, nil)
	if err := run(e, []string{"contrast", "#12", "#ffffff"}); err == nil {
		t.Fatal("expected invalid color error")
	}
	if err := run(e, []string{"contrast", "#000000"}); err == nil {
		t.Fatal("expected usage error with one color")
	}
}

func TestInkCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"light background", []string{"ink", "-o", "csv", "#ffffff"}, "#ffffff,#000000,21.00,#000000,\"rgba(0, 0, 0, 0.9)\",\"rgba(0, 0, 0, 0.78)\""},
		{"dark background", []string{"ink", "-o", "csv", "#000000"}, "#000000,#ffffff,21.00,#ffffff,\"rgba(255, 255, 255, 0.9)\",\"rgba(255, 255, 255, 0.78)\""},
		{"softened", []string{"ink", "-o", "csv", "-soften", "0.5", "-min", "0", "#ffffff"}, "#ffffff,#808080,"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, stdout, _ := testEnv(t, nil)
			if err := run(e, tt.args); err != nil {
				t.Fatalf("ink: %v", err)
			}
			if !strings.Contains(stdout.String(), tt.want) {
				t.Fatalf("got %q, want substring %q", stdout.String(), tt.want)
			}
		})
	}
}

func TestInkDefaultsToSchemeBackground(t *testing.T) {
	e, stdout, _ := testEnv(t, map[string]string{"COLORFGBG": "0;15"})
	if err := run(e, []string{"ink", "-o", "csv"}); err != nil {
		t.Fatalf("ink: %v", err)
	}
	if !strings.Contains(stdout.String(), "\r\n#ffffff,#000000,") {
		t.Fatalf("expected light background, got %q", stdout.String())
	}
}

func TestPowerupsMarkdown(t *testing.T) {
	e, stdout, _ := testEnv(t, nil)
	if err := run(e, []string{"powerups", "-o", "md", "ghost"}); err != nil {
		t.Fatalf("powerups: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header, separator and one row: %q", stdout.String())
	}
	if !strings.HasPrefix(lines[0], "| ID | Name |") {
		t.Fatalf("unexpected header %q", lines[0])
	}
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	e, stdout, _ := testEnv(t, nil)
	cfg := "theme:\n  palette: \"Pocket B&W\"\nui:\n  output: csv\n"
	if err := os.WriteFile(filepath.Join(e.cwd, ".gbtheme.yaml"), []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := run(e, []string{"page"}); err != nil {
		t.Fatalf("page: %v", err)
	}
	if !strings.Contains(stdout.String(), "pageBg,#e3e5dd\r\n") {
		t.Fatalf("config palette not applied: %q", stdout.String())
	}

	stdout.Reset()
	if err := run(e, []string{"page", "-o", "json", "--palette", "Original DMG"}); err != nil {
		t.Fatalf("page: %v", err)
	}
	if !strings.Contains(stdout.String(), `"color": "#d7e7b2"`) {
		t.Fatalf("flags should override config: %q", stdout.String())
	}
}

func TestInvalidSettingsAreReported(t *testing.T) {
	e, _, _ := testEnv(t, map[string]string{"GBTHEME_OUTPUT": "xml", "GBTHEME_COLOR": "sometimes"})
	err := run(e, []string{"palettes"})
	if err == nil {
		t.Fatal("expected config error")
	}
	for _, want := range []string{"output", "color"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q should mention %s", err, want)
		}
	}
}

func TestCatalogFileFlag(t *testing.T) {
	e, stdout, _ := testEnv(t, nil)
	path, err := filepath.Abs(filepath.Join("..", "..", "internal", "catalog", "testdata", "mini.js"))
	if err != nil {
		t.Fatalf("abs: %v", err)
	}
	if err := run(e, []string{"palettes", "--catalog", path, "-o", "csv"}); err != nil {
		t.Fatalf("palettes: %v", err)
	}
	if !strings.Contains(stdout.String(), ",Mono,") {
		t.Fatalf("catalog file not used: %q", stdout.String())
	}
}

func TestCardPlain(t *testing.T) {
	e, stdout, _ := testEnv(t, map[string]string{"NO_COLOR": "1"})
	if err := run(e, []string{"card", "--shell", "Teal"}); err != nil {
		t.Fatalf("card: %v", err)
	}
	out := stdout.String()
	if strings.Contains(out, "\x1b[") {
		t.Fatal("NO_COLOR output must not carry escapes")
	}
	for _, want := range []string{"Original DMG", "Original DMG / catalog", "Teal"} {
		if !strings.Contains(out, want) {
			t.Fatalf("card output missing %q", want)
		}
	}
}

func TestCardRejectsUnknownKind(t *testing.T) {
	e, _, _ := testEnv(t, nil)
	if err := run(e, []string{"card", "--only", "board"}); err == nil {
		t.Fatal("expected error for --only board")
	}
}

func TestPreviewWritesFile(t *testing.T) {
	e, stdout, _ := testEnv(t, nil)
	if err := run(e, []string{"preview", "--out", "p.html"}); err != nil {
		t.Fatalf("preview: %v", err)
	}
	path := filepath.Join(e.cwd, "p.html")
	if strings.TrimSpace(stdout.String()) != path {
		t.Fatalf("preview should print its path, got %q", stdout.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read preview: %v", err)
	}
	if !strings.Contains(string(data), "Matte Silver") {
		t.Fatal("preview missing shells")
	}
}
