// Package report renders analyzed package license data as delimited
// text or a terminal grid. Row and column policy lives here, the
// analysis itself comes structured and order stable from callers.
package report

import (
	"github.com/joshyorko/sbomlic/spdx"
)

// Record is one package with its analyzed license fields, in the
// order the fields appeared in the SBOM.
type Record struct {
	Name     string
	Version  string
	Type     string
	Analyses []*spdx.Analysis
}

// ParseOK tells whether every license field of the package parsed.
func (it Record) ParseOK() bool {
	for _, analysis := range it.Analyses {
		if !analysis.Parsed {
			return false
		}
	}
	return true
}

// Licenses gives one display line per effective license entry.
// Unparsed raw strings are marked with a leading "!" so they stand
// apart from real identifiers.
func (it Record) Licenses() []string {
	lines := make([]string, 0, len(it.Analyses))
	for _, analysis := range it.Analyses {
		if !analysis.Parsed {
			lines = append(lines, "!"+analysis.Entries[0].License)
			continue
		}
		for _, entry := range analysis.Entries {
			lines = append(lines, entry.String())
		}
	}
	return lines
}

// GridLines is Licenses with OR alternatives annotated by their
// group path, for the terminal grid where cell space is cheap.
func (it Record) GridLines() []string {
	lines := make([]string, 0, len(it.Analyses))
	for _, analysis := range it.Analyses {
		if !analysis.Parsed {
			lines = append(lines, "!"+analysis.Entries[0].License)
			continue
		}
		for _, entry := range analysis.Entries {
			line := entry.String()
			if len(entry.Group) > 0 {
				line += " (any of " + entry.Group.String() + ")"
			}
			lines = append(lines, line)
		}
	}
	return lines
}

// Failures collects the diagnostics of this record's license fields.
func (it Record) Failures() []error {
	collected := make([]error, 0, 1)
	for _, analysis := range it.Analyses {
		if analysis.Failure != nil {
			collected = append(collected, analysis.Failure)
		}
	}
	return collected
}
