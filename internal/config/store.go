package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Store is the hierarchical configuration tree. Each instance is owned
// exclusively by its caller; concurrent loads against the same instance
// need external locking.
type Store struct {
	tree     map[string]any
	now      func() time.Time
	hostname func() (string, error)
}

// Option customizes store construction. Defaults are the wall clock and
// the machine hostname.
type Option func(*Store)

// WithClock injects the time source used for placeholder timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithHostname pins the hostname used for placeholder expansion.
func WithHostname(name string) Option {
	return func(s *Store) {
		s.hostname = func() (string, error) { return name, nil }
	}
}

// NewStore builds a store seeded with the default tree.
func NewStore(opts ...Option) *Store {
	s := &Store{
		tree:     defaultTree(),
		now:      time.Now,
		hostname: os.Hostname,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get walks the tree along the dot-separated path. The default is returned
// the instant a segment is missing or a non-final segment is not a nested
// mapping; Get never fails.
func (s *Store) Get(path string, def any) any {
	current := any(s.tree)
	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return def
		}
		next, ok := node[segment]
		if !ok {
			return def
		}
		current = next
	}
	return current
}

// Set assigns value at the dot-separated path, creating intermediate
// mappings as needed and overwriting whatever was there before.
func (s *Store) Set(path string, value any) {
	segments := strings.Split(path, ".")
	node := s.tree
	for _, segment := range segments[:len(segments)-1] {
		child, ok := node[segment].(map[string]any)
		if !ok {
			child = make(map[string]any)
			node[segment] = child
		}
		node = child
	}
	node[segments[len(segments)-1]] = value
}

// deepMerge overlays overlay onto base. Nested mappings on both sides
// recurse; every other combination replaces wholesale, including a scalar
// replacing a subtree.
func deepMerge(base, overlay map[string]any) {
	for key, value := range overlay {
		if overlayChild, ok := value.(map[string]any); ok {
			if baseChild, ok := base[key].(map[string]any); ok {
				deepMerge(baseChild, overlayChild)
				continue
			}
		}
		base[key] = value
	}
}

// GetString reads a string value, falling back when absent or not a string.
func (s *Store) GetString(path, def string) string {
	if v, ok := s.Get(path, nil).(string); ok {
		return v
	}
	return def
}

// GetInt reads an integer, accepting the numeric representations the JSON
// and TOML decoders produce.
func (s *Store) GetInt(path string, def int) int {
	switch v := s.Get(path, nil).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return def
	}
}

// GetFloat reads a decimal value.
func (s *Store) GetFloat(path string, def float64) float64 {
	switch v := s.Get(path, nil).(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return def
	}
}

// GetBool reads a boolean value.
func (s *Store) GetBool(path string, def bool) bool {
	if v, ok := s.Get(path, nil).(bool); ok {
		return v
	}
	return def
}

// GetStringList reads a list of strings, tolerating the []any shape JSON
// decoding produces.
func (s *Store) GetStringList(path string) []string {
	switch v := s.Get(path, nil).(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, stringify(item))
		}
		return out
	default:
		return nil
	}
}

// Tree returns a deep copy of the current tree, safe for the caller to
// mutate or serialize.
func (s *Store) Tree() map[string]any {
	return copyTree(s.tree)
}

func copyTree(node map[string]any) map[string]any {
	out := make(map[string]any, len(node))
	for key, value := range node {
		if child, ok := value.(map[string]any); ok {
			out[key] = copyTree(child)
			continue
		}
		out[key] = value
	}
	return out
}

// Field is one flattened configuration entry.
type Field struct {
	Path  string
	Value string
}

// Flatten renders the tree as sorted dot-path/value pairs for display.
func (s *Store) Flatten() []Field {
	var fields []Field
	flattenInto(&fields, "", s.tree)
	sort.Slice(fields, func(i, j int) bool { return fields[i].Path < fields[j].Path })
	return fields
}

func flattenInto(fields *[]Field, prefix string, node map[string]any) {
	for key, value := range node {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if child, ok := value.(map[string]any); ok {
			flattenInto(fields, path, child)
			continue
		}
		*fields = append(*fields, Field{Path: path, Value: stringify(value)})
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, stringify(item))
		}
		return strings.Join(parts, ", ")
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Hostname resolves the machine hostname used in placeholder expansion.
func (s *Store) Hostname() string {
	name, err := s.hostname()
	if err != nil || strings.TrimSpace(name) == "" {
		return "localhost"
	}
	return name
}

// Now returns the store's current instant from its injected clock.
func (s *Store) Now() time.Time {
	return s.now()
}
