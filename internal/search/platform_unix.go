//go:build !windows

package search

import "os"

type hostPlatform struct{}

// Host returns the Platform for the current operating system.
func Host() Platform { return hostPlatform{} }

func (hostPlatform) Windows() bool { return false }

func (hostPlatform) HomeDir() (string, error) { return os.UserHomeDir() }

// InstallPath reports no record; non-Windows systems use InstallPrefix.
func (hostPlatform) InstallPath() (string, bool) { return "", false }
