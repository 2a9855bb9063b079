// Package web serves the palette preview page and a small JSON API.
package web

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/phyten/gbtheme/internal/catalog"
	"github.com/phyten/gbtheme/internal/colorutil"
)

const (
	stylesPath = "/assets/styles.css"
	scriptPath = "/assets/ui.js"

	contentSecurityPolicy = "default-src 'none'; style-src 'self'; script-src 'self'; img-src 'self'; connect-src 'self'; form-action 'self'; base-uri 'none'"
)

var (
	//go:embed templates/index.html
	indexHTML string
	indexOnce sync.Once
	indexTmpl *template.Template

	//go:embed assets/styles.css
	stylesCSS string

	//go:embed assets/ui.js
	scriptJS string
)

type server struct {
	cat *catalog.Catalog
	log *zap.Logger
}

// Register attaches the preview page, its assets and the JSON API to mux.
func Register(mux *http.ServeMux, cat *catalog.Catalog, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &server{cat: cat, log: log}
	mux.HandleFunc("GET /{$}", s.logged(s.indexHandler))
	mux.HandleFunc("GET "+stylesPath, stylesHandler)
	mux.HandleFunc("GET "+scriptPath, scriptHandler)
	mux.HandleFunc("GET /api/palettes", s.logged(s.palettesHandler))
	mux.HandleFunc("GET /api/pages/{palette}/{page}", s.logged(s.pageHandler))
	mux.HandleFunc("GET /api/shells/{name}", s.logged(s.shellHandler))
	mux.HandleFunc("GET /api/contrast", s.logged(s.contrastHandler))
}

// WriteStatic renders the preview as a self-contained HTML document.
func WriteStatic(w io.Writer, cat *catalog.Catalog) error {
	data := buildPage(cat)
	data.Static = true
	data.InlineCSS = template.CSS(stylesCSS)
	return loadTemplate().Execute(w, data)
}

func (s *server) logged(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h(w, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

func (s *server) indexHandler(w http.ResponseWriter, r *http.Request) {
	data := buildPage(s.cat)
	data.StylesPath = stylesPath
	data.ScriptPath = scriptPath
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Referrer-Policy", "no-referrer")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("Content-Security-Policy", contentSecurityPolicy)
	if err := loadTemplate().Execute(w, data); err != nil {
		s.log.Error("render index", zap.Error(err))
		http.Error(w, "template rendering failed", http.StatusInternalServerError)
	}
}

func stylesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write([]byte(stylesCSS))
}

func scriptHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write([]byte(scriptJS))
}

func (s *server) palettesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.cat.Menu)
}

type pageResponse struct {
	Palette string        `json:"palette"`
	Page    string        `json:"page"`
	Roles   catalog.Roles `json:"roles"`
}

func (s *server) pageHandler(w http.ResponseWriter, r *http.Request) {
	p, err := s.cat.Palette(r.PathValue("palette"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	page := r.PathValue("page")
	writeJSON(w, http.StatusOK, pageResponse{Palette: p.Name, Page: page, Roles: s.cat.PageTheme(p.Name, page)})
}

type shellResponse struct {
	Name  string        `json:"name"`
	Roles catalog.Roles `json:"roles"`
}

func (s *server) shellHandler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	color := r.URL.Query().Get("color")
	if color != "" && !colorutil.ValidHex(color) {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid color %q", color))
		return
	}
	skin, err := s.cat.Shell(name)
	if err == nil {
		name = skin.Name
	} else if color == "" {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, shellResponse{Name: name, Roles: s.cat.ShellTheme(name, color)})
}

type contrastResponse struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Ratio float64 `json:"ratio"`
	InkA  string  `json:"inkOnA"`
}

func (s *server) contrastHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	a, b := q.Get("a"), q.Get("b")
	for _, v := range []string{a, b} {
		if !colorutil.ValidHex(v) {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid color %q", v))
			return
		}
	}
	writeJSON(w, http.StatusOK, contrastResponse{
		A:     colorutil.ParseHex(a).Hex(),
		B:     colorutil.ParseHex(b).Hex(),
		Ratio: colorutil.Contrast(a, b),
		InkA:  colorutil.PickReadableInk(a, "#000000", "#ffffff"),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func loadTemplate() *template.Template {
	indexOnce.Do(func() {
		indexTmpl = template.Must(template.New("index").Parse(indexHTML))
	})
	return indexTmpl
}
