// Package config loads the toolchain-wide configuration file.
//
// The file is TOML. The loader requires a top-level [default] group and
// reads an optional switches array from it:
//
//	[default]
//	switches = [
//	    "-I%%ldcbinarypath%%/../import",
//	    "-L-L%%ldcbinarypath%%/../lib",
//	]
//
// Other keys under [default] are preserved in the settings tree but are
// not interpreted here. The %%ldcbinarypath%% token in a switch is
// replaced with the directory containing the running executable.
//
// A File is populated by a single Read at startup and consulted read-only
// afterwards. Read is not safe for concurrent invocation on one File;
// once it has returned, concurrent readers are fine.
//
// Failures are reported as *Error values classified by Kind. KindNotFound
// is the soft case: no candidate location holds the file and the caller
// is expected to fall back to DFLAGS.
package config
