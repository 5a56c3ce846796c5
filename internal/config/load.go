package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"labrec/internal/cfgfile"
	"labrec/internal/outputpath"
)

// LoadFile overlays the store from a configuration file, dispatching on the
// extension: .cfg takes the legacy recorder path, .toml decodes TOML, and
// anything else is treated as JSON. On error the store keeps its pre-load
// state.
func (s *Store) LoadFile(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cfg":
		return s.loadLegacy(path)
	case ".toml":
		return s.loadTOML(path)
	default:
		return s.loadJSON(path)
	}
}

func (s *Store) loadJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	overlay := make(map[string]any)
	if err := json.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	deepMerge(s.tree, overlay)
	return nil
}

func (s *Store) loadTOML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	overlay := make(map[string]any)
	if err := toml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	deepMerge(s.tree, overlay)
	return nil
}

func (s *Store) loadLegacy(path string) error {
	cfg, err := cfgfile.ParseFile(path)
	if err != nil {
		return err
	}
	s.ApplyLegacy(cfg)
	return nil
}

// ApplyLegacy maps parsed legacy fields onto the tree: the output filename
// is resolved through the placeholder pipeline, remote-control and
// auto-start flags are remapped, and RequiredStreams normalizes to a string
// list. A field that fails its target coercion is skipped; the rest still
// apply.
func (s *Store) ApplyLegacy(cfg cfgfile.Map) {
	fallback := s.GetString("filename", outputpath.DefaultFilename)
	s.Set("filename", outputpath.Resolve(cfg, fallback, s.Hostname(), s.now()))

	if v, ok := cfg.Lookup(cfgfile.KeyRCSEnabled); ok {
		if enabled, ok := v.Bool(); ok {
			s.Set("remote_control.enabled", enabled)
		}
	}
	if v, ok := cfg.Lookup(cfgfile.KeyRCSPort); ok {
		if port, ok := v.Int(); ok {
			s.Set("remote_control.port", int(port))
		}
	}
	if v, ok := cfg.Lookup(cfgfile.KeyAutoStart); ok {
		if auto, ok := v.Bool(); ok {
			s.Set("auto_start", auto)
		}
	}
	if v, ok := cfg.Lookup(cfgfile.KeyRequiredStreams); ok {
		s.Set("streams.required_labels", v.Strings())
	}
}
