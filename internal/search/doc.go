// Package search locates the toolchain configuration file.
//
// Candidate locations are probed strictly in this order, and the first
// that exists wins:
//
//  1. <working directory>/<filename>
//  2. <directory containing the executable>/<filename>
//  3. <home>/.ldc/<filename>
//  4. <home>/<filename> (Windows only)
//  5. <grandparent of the executable>/etc/<filename>
//  6. <registry install path>/etc/<filename> (Windows only)
//  7. <install prefix>/etc/<filename> (non-Windows)
//  8. <install prefix>/etc/ldc/<filename> (non-Windows)
//  9. /etc/<filename> (non-Windows)
//  10. /etc/ldc/<filename> (non-Windows)
//
// The order is load-bearing: users override the system-wide configuration
// by dropping a file into an earlier location. Probes are bare existence
// checks; no file is opened until the parser reads the winner.
//
// Finding nothing is a normal outcome, not an error. Callers are expected
// to fall back to environment-driven configuration (DFLAGS).
package search
