// Package path provides filesystem path expansion and resolution for
// user-supplied CLI values.
//
// All path-valued parameters (profile, icon, background) pass through this
// package before any filesystem probe runs. Resolution is purely lexical
// plus os.Stat; nothing here creates or modifies files.
//
// Resolution rules:
//   - A leading "~" expands to the user home directory
//   - Relative paths resolve against the working directory
//   - Icon lookups additionally fall back to the application base directory
package path

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound indicates a path resolved to no existing file.
var ErrNotFound = errors.New("file not found")

// Expand replaces a leading "~" with the user home directory.
// Paths without a tilde prefix are returned unchanged, as are paths
// like "~user/..." which Go cannot resolve portably.
func Expand(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

// Resolve expands p and makes it absolute against the working directory.
func Resolve(p string) (string, error) {
	return filepath.Abs(Expand(p))
}

// InBase expands p and resolves it against base unless already absolute.
func InBase(p, base string) string {
	p = Expand(p)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// FindFile locates p as a regular file. Absolute paths are checked as-is;
// relative paths are tried against the working directory first, then
// against base. Returns the absolute path of the first match.
func FindFile(p, base string) (string, error) {
	p = Expand(p)

	var candidates []string
	if filepath.IsAbs(p) {
		candidates = []string{p}
	} else {
		abs, err := filepath.Abs(p)
		if err == nil {
			candidates = append(candidates, abs)
		}
		candidates = append(candidates, filepath.Join(base, p))
	}

	for _, c := range candidates {
		if st, err := os.Stat(c); err == nil && st.Mode().IsRegular() {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, p)
}

// BaseDir returns the application base directory: the directory holding
// the running executable, or the ICONFORGE_DIR override when set.
// Bundled resources (the sample icon) live beneath this directory.
func BaseDir() string {
	if d := os.Getenv("ICONFORGE_DIR"); d != "" {
		return d
	}
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
