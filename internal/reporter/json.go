package reporter

import (
	"encoding/json"
	"io"
)

// JSONReporter emits findings as an indented JSON array, fix edits included.
type JSONReporter struct {
	writer io.Writer
}

// NewJSONReporter creates a JSON reporter.
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{writer: w}
}

// Report writes the findings array. An empty result serializes as [].
func (r *JSONReporter) Report(findings []Finding) error {
	if findings == nil {
		findings = []Finding{}
	}
	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(findings)
}
