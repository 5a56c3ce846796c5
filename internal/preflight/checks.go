// Package preflight verifies that a resolved output target is actually
// usable before a recording starts: the receiving directory must exist (or
// be creatable), be writable, and sit on a filesystem with room for a
// session's worth of data.
package preflight

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// Result captures the outcome of one readiness check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// minFreeBytes is the free-space floor below which the space check fails.
// Long EEG sessions easily reach hundreds of megabytes.
const minFreeBytes = 1 << 30

// CheckConfigFile verifies the configuration file exists and is readable.
func CheckConfigFile(path string) Result {
	const name = "Config file"
	if path == "" {
		return Result{Name: name, Passed: true, Detail: "none supplied; defaults in use"}
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not readable: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: path}
}

// CheckOutputTarget evaluates the directory that will receive the resolved
// recording path. When the directory does not exist yet, the nearest
// existing ancestor is checked instead, since parents are created on
// demand at recording time.
func CheckOutputTarget(resolvedPath string) []Result {
	dir := filepath.Dir(resolvedPath)
	if dir == "" || dir == "." {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		}
	}
	existing := nearestExistingDir(dir)

	return []Result{
		checkDirectoryAccess("Output directory", dir, existing),
		checkFreeSpace("Free space", existing),
	}
}

func checkDirectoryAccess(name, target, existing string) Result {
	detail := target
	if existing != target {
		detail = fmt.Sprintf("%s (will be created under %s)", target, existing)
	}
	info, err := os.Stat(existing)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", detail, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %s is not a directory)", detail, existing)}
	}
	if err := unix.Access(existing, unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", detail, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (writable)", detail)}
}

func checkFreeSpace(name, path string) Result {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: statfs: %v)", path, err)}
	}
	free := stat.Bavail * uint64(stat.Bsize)
	detail := fmt.Sprintf("%s on %s", formatBytes(free), path)
	if free < minFreeBytes {
		return Result{Name: name, Detail: detail + " (below 1 GiB)"}
	}
	return Result{Name: name, Passed: true, Detail: detail}
}

// nearestExistingDir walks up from dir until it finds a directory that
// exists. Filesystem roots always exist, so the walk terminates.
func nearestExistingDir(dir string) string {
	for {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}

func formatBytes(n uint64) string {
	const (
		kib = 1 << 10
		mib = 1 << 20
		gib = 1 << 30
	)
	switch {
	case n >= gib:
		return fmt.Sprintf("%.1f GiB", float64(n)/float64(gib))
	case n >= mib:
		return fmt.Sprintf("%.1f MiB", float64(n)/float64(mib))
	case n >= kib:
		return fmt.Sprintf("%.1f KiB", float64(n)/float64(kib))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
