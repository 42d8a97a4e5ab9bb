package search

// Platform supplies the platform-specific lookups the locator depends on.
// One implementation exists per operating system; tests substitute fakes
// to exercise both candidate orders on any host.
type Platform interface {
	// Windows reports whether the Windows-only candidate locations apply.
	Windows() bool

	// HomeDir returns the user's home directory.
	HomeDir() (string, error)

	// InstallPath returns the install location recorded by the platform's
	// installer, if it keeps such a record (the registry on Windows).
	// ok is false when no record is available; callers must tolerate
	// this, the record can go stale across version upgrades.
	InstallPath() (path string, ok bool)
}
