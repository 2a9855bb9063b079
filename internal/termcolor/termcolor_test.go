package termcolor

import (
	"os"
	"testing"

	"github.com/phyten/gbtheme/internal/colorutil"
)

func TestParseMode(t *testing.T) {
	cases := []struct {
		input string
		want  ColorMode
		err   bool
	}{
		{"", ModeAuto, false},
		{"auto", ModeAuto, false},
		{"always", ModeAlways, false},
		{"never", ModeNever, false},
		{"ALWAYS", ModeAlways, false},
		{"invalid", ModeAuto, true},
	}
	for _, tc := range cases {
		got, err := ParseMode(tc.input)
		if tc.err {
			if err == nil {
				t.Fatalf("ParseMode(%q) expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseMode(%q) unexpected error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseMode(%q)=%v want %v", tc.input, got, tc.want)
		}
	}
}

func TestEnabledEnvironmentOverrides(t *testing.T) {
	_, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer func() {
		_ = w.Close()
	}()

	cases := []struct {
		name string
		mode ColorMode
		env  map[string]string
		want bool
	}{
		{"pipeAuto", ModeAuto, nil, false},
		{"noColor", ModeAuto, map[string]string{"NO_COLOR": "1", "FORCE_COLOR": "1"}, false},
		{"dumb", ModeAuto, map[string]string{"TERM": "dumb", "CLICOLOR_FORCE": "1"}, false},
		{"clicolorZero", ModeAuto, map[string]string{"CLICOLOR": "0"}, false},
		{"clicolorForce", ModeAuto, map[string]string{"CLICOLOR_FORCE": "1"}, true},
		{"forceColorZero", ModeAuto, map[string]string{"FORCE_COLOR": "0"}, false},
		{"always", ModeAlways, map[string]string{"NO_COLOR": "1"}, true},
		{"never", ModeNever, map[string]string{"FORCE_COLOR": "1"}, false},
	}
	for _, tc := range cases {
		if got := Enabled(tc.mode, w, tc.env); got != tc.want {
			t.Fatalf("%s: Enabled=%v want %v", tc.name, got, tc.want)
		}
	}
	if Enabled(ModeAuto, nil, nil) {
		t.Fatal("nil stdout should not enable colors")
	}
}

func TestDetectProfile(t *testing.T) {
	cases := []struct {
		env  map[string]string
		want Profile
	}{
		{map[string]string{"COLORTERM": "truecolor"}, ProfileTrueColor},
		{map[string]string{"COLORTERM": "24bit", "TERM": "xterm-256color"}, ProfileTrueColor},
		{map[string]string{"TERM": "xterm-256color"}, ProfileANSI256},
		{map[string]string{"TERM": "xterm"}, ProfileBasic8},
		{nil, ProfileBasic8},
	}
	for _, tc := range cases {
		if got := DetectProfile(tc.env); got != tc.want {
			t.Fatalf("DetectProfile(%v)=%v want %v", tc.env, got, tc.want)
		}
	}
}

func TestEnvMap(t *testing.T) {
	env := EnvMap([]string{"A=1", "B=x=y", "C", ""})
	if env["A"] != "1" || env["B"] != "x=y" {
		t.Fatalf("unexpected env map: %v", env)
	}
	if _, ok := env["C"]; !ok {
		t.Fatalf("key without value should be kept: %v", env)
	}
}

func TestDetectScheme(t *testing.T) {
	cases := []struct {
		env  map[string]string
		want Scheme
	}{
		{map[string]string{"COLORFGBG": "7;0"}, SchemeDark},
		{map[string]string{"COLORFGBG": "15;7"}, SchemeLight},
		{map[string]string{"COLORFGBG": "0;default;15"}, SchemeLight},
		{map[string]string{"TERM": "xterm-light"}, SchemeLight},
		{nil, SchemeDark},
	}
	for _, tc := range cases {
		if got := DetectScheme(tc.env); got != tc.want {
			t.Fatalf("DetectScheme(%v)=%v want %v", tc.env, got, tc.want)
		}
	}
	if SchemeLight.Background() != "#ffffff" || SchemeDark.Background() != "#000000" {
		t.Fatal("unexpected scheme backgrounds")
	}
}

func TestApply(t *testing.T) {
	red := colorutil.RGB{R: 255}
	s := Style{Bold: true, FG: &red}
	if got, want := Apply(s, "Hi", ProfileTrueColor, true), "\x1b[1;38;2;255;0;0mHi\x1b[0m"; got != want {
		t.Fatalf("truecolor Apply=%q want %q", got, want)
	}
	if got, want := Apply(s, "Hi", ProfileANSI256, true), "\x1b[1;38;5;196mHi\x1b[0m"; got != want {
		t.Fatalf("256 Apply=%q want %q", got, want)
	}
	if got, want := Apply(s, "Hi", ProfileBasic8, true), "\x1b[1;31mHi\x1b[0m"; got != want {
		t.Fatalf("basic Apply=%q want %q", got, want)
	}
	if got := Apply(Style{}, "Hi", ProfileTrueColor, true); got != "Hi" {
		t.Fatalf("empty style should return text, got %q", got)
	}
	if got := Apply(s, "Hi", ProfileTrueColor, false); got != "Hi" {
		t.Fatalf("disabled Apply should return text, got %q", got)
	}
}

func TestSwatchPicksReadableLabel(t *testing.T) {
	light := Swatch("#d7e7b2")
	if *light.FG != (colorutil.RGB{}) {
		t.Fatalf("light swatch should use black label, got %v", *light.FG)
	}
	dark := Swatch("#08272d")
	if *dark.FG != (colorutil.RGB{R: 255, G: 255, B: 255}) {
		t.Fatalf("dark swatch should use white label, got %v", *dark.FG)
	}
	got := Apply(Swatch("#000000"), "x", ProfileTrueColor, true)
	if want := "\x1b[38;2;255;255;255;48;2;0;0;0mx\x1b[0m"; got != want {
		t.Fatalf("Apply(Swatch)=%q want %q", got, want)
	}
}

func TestRGBToANSI256(t *testing.T) {
	if got := rgbToANSI256(0, 0, 0); got != 16 {
		t.Fatalf("black -> %d", got)
	}
	if got := rgbToANSI256(255, 255, 255); got != 231 {
		t.Fatalf("white -> %d", got)
	}
	if got := rgbToANSI256(0, 255, 0); got != 46 {
		t.Fatalf("green -> %d", got)
	}
}
