package outputpath

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// invalidBaseChars are the characters Windows forbids in file names. They
// are scrubbed on every platform so produced recordings stay portable.
var invalidBaseChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// SanitizeBaseName replaces forbidden characters with '-' and strips
// trailing spaces and dots.
func SanitizeBaseName(name string) string {
	cleaned := invalidBaseChars.ReplaceAllString(name, "-")
	return strings.TrimRight(cleaned, " .")
}

// Sanitize cleans the final component of path, leaving the directory
// portion untouched.
func Sanitize(path string) string {
	dir, base := filepath.Split(path)
	base = SanitizeBaseName(base)
	if dir == "" {
		return base
	}
	return filepath.Join(dir, base)
}

// ExpandUserEnv expands a leading ~ and any $VAR / ${VAR} references. An
// undefined variable stays literal instead of expanding to the empty string,
// so a mistyped name cannot silently rewrite the destination.
func ExpandUserEnv(path string) string {
	return os.Expand(expandUser(path), func(name string) string {
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		return "$" + name
	})
}

func expandUser(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	if path[1] == '/' || path[1] == '\\' {
		return filepath.Join(home, path[2:])
	}
	return path
}
