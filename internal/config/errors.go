package config

import (
	"errors"
	"fmt"
)

// Kind classifies a configuration load failure.
type Kind int

const (
	// KindNotFound means no candidate location holds the file. Soft
	// failure: callers fall back to environment-driven flags.
	KindNotFound Kind = iota + 1

	// KindSchema means the document parsed but the required layout is
	// missing or malformed.
	KindSchema

	// KindIO means the file exists but could not be read.
	KindIO

	// KindParse means the document is syntactically malformed. Line and
	// Msg carry the parser's position and message.
	KindParse

	// KindUnknown covers any other failure in the parsing layer.
	KindUnknown
)

// String returns the kind's name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindSchema:
		return "schema error"
	case KindIO:
		return "io error"
	case KindParse:
		return "parse error"
	default:
		return "unknown error"
	}
}

// Error is a configuration load failure. Line is set for KindParse only.
type Error struct {
	Kind     Kind
	Filename string
	Line     int
	Msg      string
	Err      error // underlying cause, may be nil
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return "failed to locate the configuration file: " + e.Filename
	case KindSchema:
		return e.Msg
	case KindIO:
		return "error reading configuration file: " + e.Filename
	case KindParse:
		return fmt.Sprintf("error parsing configuration file: %s(%d): %s", e.Filename, e.Line, e.Msg)
	default:
		return "error loading configuration file: " + e.Filename
	}
}

func (e *Error) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a load failure of the soft not-found
// kind.
func IsNotFound(err error) bool {
	var cerr *Error
	return errors.As(err, &cerr) && cerr.Kind == KindNotFound
}
