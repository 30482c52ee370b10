// Package reporter provides output formatters for lint results.
//
// The package supports multiple output formats:
//   - text: human-readable `path:line:column: [Module] message` lines
//   - json: machine-readable JSON including fix edits
//   - sarif: Static Analysis Results Interchange Format for CI integration
package reporter

import (
	"fmt"
	"sort"

	"github.com/wharflab/jstyle/internal/linter"
	"github.com/wharflab/jstyle/internal/rules"
	"github.com/wharflab/jstyle/internal/sourcemap"
)

// Finding is a diagnostic resolved to a file position for output.
type Finding struct {
	File     string             `json:"file"`
	Position sourcemap.Position `json:"position"`
	Rule     string             `json:"rule"`
	Message  string             `json:"message"`

	// Edits carries the diagnostic's fix edits for machine-readable sinks.
	Edits []rules.Edit `json:"edits,omitempty"`

	// Applicability is the fix applicability, when a fix is present.
	Applicability string `json:"applicability,omitempty"`
}

// Format represents an output format type.
type Format string

const (
	// FormatText is human-readable terminal output.
	FormatText Format = "text"
	// FormatJSON is machine-readable JSON output.
	FormatJSON Format = "json"
	// FormatSARIF is the Static Analysis Results Interchange Format.
	FormatSARIF Format = "sarif"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON, FormatSARIF:
		return Format(s), nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// Locate resolves every diagnostic of the results to findings with 1-based
// positions, using each file's source to build the line index once.
func Locate(results []*linter.FileResult, sources map[string][]byte) []Finding {
	var findings []Finding
	for _, result := range results {
		if result == nil || len(result.Diagnostics) == 0 {
			continue
		}
		sm := sourcemap.New(sources[result.File])
		for _, d := range result.Diagnostics {
			f := Finding{
				File:     result.File,
				Position: sm.PositionFor(d.Range.Start),
				Rule:     d.Rule,
				Message:  d.Message,
			}
			if d.Fix != nil {
				f.Edits = d.Fix.Edits
				f.Applicability = d.Fix.Applicability.String()
			}
			findings = append(findings, f)
		}
	}
	return findings
}

// Sort orders findings by file, line, column, and rule for stable output
// when files were linted concurrently.
func Sort(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].File != findings[j].File {
			return findings[i].File < findings[j].File
		}
		if findings[i].Position.Line != findings[j].Position.Line {
			return findings[i].Position.Line < findings[j].Position.Line
		}
		if findings[i].Position.Column != findings[j].Position.Column {
			return findings[i].Position.Column < findings[j].Position.Column
		}
		return findings[i].Rule < findings[j].Rule
	})
}
