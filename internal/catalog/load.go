package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dop251/goja"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/phyten/gbtheme/internal/colorutil"
)

// scriptTimeout bounds evaluation of .js catalogs.
const scriptTimeout = 2 * time.Second

// Load reads a catalog file. The format follows the extension: .yaml/.yml,
// .toml, .json, or .js (a script that defines a global "catalog" object).
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates catalog data in the format named by ext.
func Parse(data []byte, ext string) (*Catalog, error) {
	var c Catalog
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	case ".js":
		raw, err := evalScript(string(data))
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("decode script catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog extension: %s", ext)
	}
	if err := c.init(); err != nil {
		return nil, err
	}
	return &c, nil
}

func evalScript(src string) ([]byte, error) {
	vm := goja.New()
	timer := time.AfterFunc(scriptTimeout, func() {
		vm.Interrupt("catalog script timed out")
	})
	defer timer.Stop()

	last, err := vm.RunString(src)
	if err != nil {
		return nil, fmt.Errorf("run script: %w", err)
	}
	v := vm.Get("catalog")
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		v = last
	}
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil, fmt.Errorf("script does not define a catalog object")
	}
	raw, err := json.Marshal(v.Export())
	if err != nil {
		return nil, fmt.Errorf("export script catalog: %w", err)
	}
	return raw, nil
}

func (c *Catalog) validate() error {
	seen := make(map[string]struct{}, len(c.Menu))
	for i, p := range c.Menu {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("menu[%d]: missing name", i)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("menu: duplicate palette %q", p.Name)
		}
		seen[p.Name] = struct{}{}
		if err := checkColors("menu "+p.Name, p.Roles); err != nil {
			return err
		}
		for j, hex := range p.Legacy {
			if !colorutil.ValidHex(hex) {
				return fmt.Errorf("menu %s: legacy[%d]: invalid color %q", p.Name, j, hex)
			}
		}
	}
	seen = make(map[string]struct{}, len(c.Shells))
	for i, s := range c.Shells {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("shells[%d]: missing name", i)
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("shells: duplicate shell %q", s.Name)
		}
		seen[s.Name] = struct{}{}
		for _, required := range []string{"shellBase", "bezelBase"} {
			if _, ok := s.Roles[required]; !ok {
				return fmt.Errorf("shell %s: missing %s", s.Name, required)
			}
		}
		if err := checkColors("shell "+s.Name, s.Roles); err != nil {
			return err
		}
		if s.Accent != "" && !colorutil.ValidHex(s.Accent) {
			return fmt.Errorf("shell %s: accent: invalid color %q", s.Name, s.Accent)
		}
	}
	for page, palettes := range c.Pages {
		for palette, roles := range palettes {
			if err := checkColors("page "+page+"/"+palette, roles); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkColors(where string, roles Roles) error {
	for _, pair := range roles.Ordered(nil) {
		if !colorutil.ValidHex(pair[1]) {
			return fmt.Errorf("%s: %s: invalid color %q", where, pair[0], pair[1])
		}
	}
	return nil
}
