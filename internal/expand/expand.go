// Package expand rewrites configuration switches that reference the
// toolchain's install location.
package expand

import "strings"

// BinaryPathToken is the placeholder users put in switch values to refer
// to the directory containing the running executable.
const BinaryPathToken = "%%ldcbinarypath%%"

// Expand replaces every occurrence of BinaryPathToken in raw with binDir.
// Switches without the token pass through unchanged.
func Expand(raw, binDir string) string {
	return strings.ReplaceAll(raw, BinaryPathToken, binDir)
}

// All expands every switch against binDir. The result has the same length
// and ordering as the input.
func All(switches []string, binDir string) []string {
	out := make([]string, len(switches))
	for i, s := range switches {
		out[i] = Expand(s, binDir)
	}
	return out
}
