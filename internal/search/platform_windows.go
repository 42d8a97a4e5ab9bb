//go:build windows

package search

import (
	"os"

	"golang.org/x/sys/windows/registry"
)

type hostPlatform struct{}

// Host returns the Platform for the current operating system.
func Host() Platform { return hostPlatform{} }

func (hostPlatform) Windows() bool { return true }

func (hostPlatform) HomeDir() (string, error) { return os.UserHomeDir() }

// InstallPath reads the install location the installer wrote under
// RegistryKey. ok is false when the key or value is absent, which happens
// for portable installs or after a version upgrade left the key behind.
func (hostPlatform) InstallPath() (string, bool) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, RegistryKey(), registry.QUERY_VALUE)
	if err != nil {
		return "", false
	}
	defer k.Close()

	path, _, err := k.GetStringValue("Path")
	if err != nil || path == "" {
		return "", false
	}
	return path, true
}
