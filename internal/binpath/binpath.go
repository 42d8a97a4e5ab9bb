// Package binpath resolves the path of the running executable.
package binpath

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Executable returns the path of the running executable. os.Executable is
// authoritative; argv0 is the fallback for platforms or build modes where
// it fails: an absolute argv0 is used as-is, one containing a path
// separator is resolved against the working directory, anything else is
// looked up on PATH.
func Executable(argv0 string) string {
	if exe, err := os.Executable(); err == nil {
		return exe
	}
	if filepath.IsAbs(argv0) {
		return argv0
	}
	if strings.ContainsRune(argv0, os.PathSeparator) {
		if abs, err := filepath.Abs(argv0); err == nil {
			return abs
		}
		return argv0
	}
	if found, err := exec.LookPath(argv0); err == nil {
		if abs, err := filepath.Abs(found); err == nil {
			return abs
		}
		return found
	}
	return argv0
}

// Dir returns the directory containing the running executable. This is the
// value switch expansion substitutes for the binary path token.
func Dir(argv0 string) string {
	return filepath.Dir(Executable(argv0))
}
