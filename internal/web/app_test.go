package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/phyten/gbtheme/internal/catalog"
)

func newMux(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	Register(mux, catalog.Default(), zap.NewNop())
	return mux
}

func get(t *testing.T, mux *http.ServeMux, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestIndexSetsSecurityHeaders(t *testing.T) {
	rec := get(t, newMux(t), "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	h := rec.Header()
	if h.Get("Content-Security-Policy") != contentSecurityPolicy {
		t.Fatalf("unexpected CSP %q", h.Get("Content-Security-Policy"))
	}
	if h.Get("X-Frame-Options") != "DENY" || h.Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("missing hardening headers: %v", h)
	}
	body := rec.Body.String()
	for _, want := range []string{"Original DMG", "Matte Silver", `data-bg="#d7e7b2"`, scriptPath} {
		if !strings.Contains(body, want) {
			t.Fatalf("index missing %q", want)
		}
	}
	if strings.Contains(body, `style="`) {
		t.Fatal("served page must not use inline styles")
	}
}

func TestAssetsServed(t *testing.T) {
	mux := newMux(t)
	for path, ctype := range map[string]string{
		stylesPath: "text/css; charset=utf-8",
		scriptPath: "application/javascript; charset=utf-8",
	} {
		rec := get(t, mux, path)
		if rec.Code != http.StatusOK || rec.Header().Get("Content-Type") != ctype {
			t.Fatalf("%s: status=%d type=%q", path, rec.Code, rec.Header().Get("Content-Type"))
		}
	}
}

func TestPalettesAPI(t *testing.T) {
	rec := get(t, newMux(t), "/api/palettes")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got []catalog.MenuPalette
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != len(catalog.Default().Menu) || got[0].Name != catalog.DefaultPalette {
		t.Fatalf("unexpected palettes: %+v", got)
	}
}

func TestPageAPIAppliesOverrides(t *testing.T) {
	rec := get(t, newMux(t), "/api/pages/original%20dmg/achievements")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var got pageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Palette != catalog.DefaultPalette || got.Roles["pageBg"] == "" {
		t.Fatalf("unexpected page: %+v", got)
	}
}

func TestShellAPI(t *testing.T) {
	mux := newMux(t)
	tests := []struct {
		path   string
		status int
		brand  string
	}{
		{"/api/shells/Teal", http.StatusOK, "#f4f1fb"},
		{"/api/shells/Matte%20Silver", http.StatusOK, "#1b1724"},
		{"/api/shells/Custom?color=%23000000", http.StatusOK, "#f4f1fb"},
		{"/api/shells/Nope", http.StatusNotFound, ""},
		{"/api/shells/Teal?color=red", http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		rec := get(t, mux, tt.path)
		if rec.Code != tt.status {
			t.Fatalf("%s: status = %d, want %d", tt.path, rec.Code, tt.status)
		}
		if tt.brand == "" {
			continue
		}
		var got shellResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("%s: decode: %v", tt.path, err)
		}
		if got.Roles["brandInk"] != tt.brand {
			t.Fatalf("%s: brandInk = %s, want %s", tt.path, got.Roles["brandInk"], tt.brand)
		}
	}
}

func TestContrastAPI(t *testing.T) {
	mux := newMux(t)
	rec := get(t, mux, "/api/contrast?a=%23000000&b=%23FFFFFF")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got contrastResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Ratio < 20.99 || got.Ratio > 21.01 {
		t.Fatalf("ratio = %v, want 21", got.Ratio)
	}
	if got.B != "#ffffff" || got.InkA != "#ffffff" {
		t.Fatalf("unexpected response: %+v", got)
	}

	rec = get(t, mux, "/api/contrast?a=%23000&b=%23ffffff")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("short hex: status = %d", rec.Code)
	}
}

func TestWriteStaticInlinesStyles(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteStatic(&buf, catalog.Default()); err != nil {
		t.Fatalf("WriteStatic: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<style>") || strings.Contains(out, "<script") {
		t.Fatalf("static page should inline css and carry no script")
	}
	if !strings.Contains(out, `style="background-color: #d7e7b2; color: #000000"`) {
		t.Fatalf("static swatches should carry inline colors")
	}
	if strings.Contains(out, "contrast-form") {
		t.Fatal("static page should not include the API form")
	}
}

func TestWriteStaticEscapesNames(t *testing.T) {
	data := []byte(`
menu:
  - name: "<script>alert(1)</script>"
    roles: {cardPrimary: "#ffffff", titleInk: "#000000"}
shells:
  - name: "Plain"
    roles: {shellBase: "#ffffff", bezelBase: "#000000"}
`)
	cat, err := catalog.Parse(data, ".yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteStatic(&buf, cat); err != nil {
		t.Fatalf("WriteStatic: %v", err)
	}
	if strings.Contains(buf.String(), "<script>alert") {
		t.Fatal("palette name was not escaped")
	}
}
