// Package testsupport provides shared helpers for labrec tests: deterministic
// store construction and temp config-file fixtures.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"labrec/internal/config"
)

// FixedInstant is the deterministic timestamp tests resolve filenames with.
var FixedInstant = time.Date(2026, 8, 31, 13, 5, 9, 123_000_000, time.UTC)

// FixedHostname is the hostname pinned onto test stores.
const FixedHostname = "host01"

// StoreOption customizes the generated test store.
type StoreOption = config.Option

// NewStore produces a store with a fixed clock and hostname so resolved
// filenames are reproducible. Additional options are applied on top.
func NewStore(t testing.TB, opts ...StoreOption) *config.Store {
	t.Helper()

	base := []config.Option{
		config.WithClock(func() time.Time { return FixedInstant }),
		config.WithHostname(FixedHostname),
	}
	return config.NewStore(append(base, opts...)...)
}

// WriteConfig writes content to name inside a fresh temp directory and
// returns the full path.
func WriteConfig(t testing.TB, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
