package search

import (
	"os"
	"path/filepath"
)

// Build-time values, set with -ldflags. Version feeds the Windows registry
// key so the installer and the locator stay on the same key across
// releases.
var (
	// InstallPrefix is the prefix the toolchain was configured for.
	InstallPrefix = "/usr/local"

	// Version is the toolchain version.
	Version = "0.11.0"
)

// RegistryKey returns the versioned registry key the Windows installer
// records the install path under.
func RegistryKey() string {
	return `SOFTWARE\ldc-developers\LDC\` + Version
}

// Locator resolves the configuration file by probing an ordered list of
// candidate locations.
type Locator struct {
	plat   Platform
	binDir string // directory containing the running executable
}

// New returns a Locator probing relative to the given executable directory.
func New(binDir string, plat Platform) *Locator {
	return &Locator{plat: plat, binDir: binDir}
}

// Candidates returns every location that would be probed for filename, in
// probe order. The order is a compatibility contract: earlier entries let
// a local file override the system-wide one.
func (l *Locator) Candidates(filename string) []string {
	var c []string

	// working directory first so a local file wins; an unresolvable
	// working directory skips the step rather than failing the search
	if cwd, err := os.Getwd(); err == nil {
		c = append(c, filepath.Join(cwd, filename))
	}

	// next to the executable
	c = append(c, filepath.Join(l.binDir, filename))

	// user configuration
	if home, err := l.plat.HomeDir(); err == nil {
		c = append(c, filepath.Join(home, ".ldc", filename))
		if l.plat.Windows() {
			c = append(c, filepath.Join(home, filename))
		}
	}

	// etc relative to the install tree: <grandparent of exe>/etc,
	// computed directly instead of appending ".." segments
	if parent := filepath.Dir(l.binDir); parent != l.binDir {
		c = append(c, filepath.Join(parent, "etc", filename))
	}

	if l.plat.Windows() {
		if install, ok := l.plat.InstallPath(); ok {
			c = append(c, filepath.Join(install, "etc", filename))
		}
	} else {
		c = append(c,
			filepath.Join(InstallPrefix, "etc", filename),
			filepath.Join(InstallPrefix, "etc", "ldc", filename),
			filepath.Join("/etc", filename),
			filepath.Join("/etc/ldc", filename),
		)
	}

	return c
}

// Locate returns the first existing candidate for filename. ok is false
// when no candidate exists; that is an expected outcome, callers fall back
// to environment-driven configuration.
func (l *Locator) Locate(filename string) (path string, ok bool) {
	for _, p := range l.Candidates(filename) {
		if exists(p) {
			return p, true
		}
	}
	return "", false
}

// exists is a pure existence check; the file is never opened.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
