// Package doctor diagnoses the configuration search path.
package doctor

import (
	"os"

	"github.com/raphi011/ldconf/internal/config"
	"github.com/raphi011/ldconf/internal/search"
)

// Status is the outcome of probing one candidate location.
type Status int

const (
	// StatusMissing means the candidate does not exist.
	StatusMissing Status = iota
	// StatusSelected means the candidate exists and wins the search.
	StatusSelected
	// StatusShadowed means the candidate exists but an earlier one wins.
	StatusShadowed
)

// Candidate is one probed location and its outcome.
type Candidate struct {
	Path   string
	Status Status
}

// Report is the outcome of probing every candidate location, plus the
// load result for the winning file.
type Report struct {
	Candidates []Candidate
	Selected   string // empty when no candidate exists
	LoadErr    error  // nil when the selected file loads cleanly or none exists
	Switches   []string
}

// Run probes every candidate location for filename and, when one wins,
// verifies that it loads and expands against binDir.
func Run(loc *search.Locator, filename, binDir string) Report {
	var r Report
	for _, p := range loc.Candidates(filename) {
		st := StatusMissing
		if _, err := os.Stat(p); err == nil {
			if r.Selected == "" {
				r.Selected = p
				st = StatusSelected
			} else {
				st = StatusShadowed
			}
		}
		r.Candidates = append(r.Candidates, Candidate{Path: p, Status: st})
	}

	if r.Selected != "" {
		var f config.File
		if err := f.Read(loc, filename, binDir); err != nil {
			r.LoadErr = err
		} else {
			r.Switches = f.Switches
		}
	}
	return r
}
