package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/ldconf/internal/expand"
	"github.com/raphi011/ldconf/internal/search"
)

// File is the loaded toolchain configuration.
type File struct {
	// Settings is the parsed document, read-only after Read.
	Settings Tree

	// Path is the location Read loaded; empty until Read succeeds.
	Path string

	// Switches holds the expanded command-line switches from
	// default.switches, in document order. Empty when the document has
	// no switches array.
	Switches []string
}

// Read locates filename via loc, parses the winning candidate and expands
// its switches against binDir, the directory containing the running
// executable. On failure File stays unpopulated and the returned error is
// an *Error carrying the failure Kind.
func (f *File) Read(loc *search.Locator, filename, binDir string) error {
	path, ok := loc.Locate(filename)
	if !ok {
		return &Error{Kind: KindNotFound, Filename: filename}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return &Error{Kind: KindIO, Filename: filename, Err: err}
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		var perr toml.ParseError
		if errors.As(err, &perr) {
			return &Error{
				Kind:     KindParse,
				Filename: filename,
				Line:     perr.Position.Line,
				Msg:      perr.Message,
				Err:      err,
			}
		}
		return &Error{Kind: KindUnknown, Filename: filename, Err: err}
	}

	settings := Tree(raw)

	root, ok := settings["default"]
	if !ok {
		return &Error{Kind: KindSchema, Filename: filename, Msg: "no default settings in configuration file"}
	}
	group, ok := root.(map[string]any)
	if !ok {
		return &Error{Kind: KindSchema, Filename: filename, Msg: "default is not a group"}
	}

	switches, err := stringArray(group, "switches")
	if err != nil {
		return &Error{Kind: KindSchema, Filename: filename, Msg: err.Error()}
	}

	f.Settings = settings
	f.Path = path
	f.Switches = expand.All(switches, binDir)
	return nil
}

// stringArray reads key from group as a string slice. An absent key yields
// nil without error; a present key must be an array holding only strings.
func stringArray(group map[string]any, key string) ([]string, error) {
	raw, ok := group[key]
	if !ok {
		return nil, nil
	}
	arr, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("default.%s is not an array", key)
	}
	out := make([]string, len(arr))
	for i, v := range arr {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("default.%s[%d] is not a string", key, i)
		}
		out[i] = s
	}
	return out, nil
}
