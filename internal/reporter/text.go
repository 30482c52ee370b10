package reporter

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var ruleColor = color.New(color.FgBlue)

func init() {
	// fatih/color only checks os.Stdout; respect redirection explicitly.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

// TextReporter writes one `path:line:column: [Module] message` line per
// finding, the format checkstyle users grep for.
type TextReporter struct {
	writer io.Writer
}

// NewTextReporter creates a text reporter.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{writer: w}
}

// Report writes all findings followed by a one-line summary.
func (r *TextReporter) Report(findings []Finding) error {
	for _, f := range findings {
		_, err := fmt.Fprintf(r.writer, "%s:%d:%d: %s %s\n",
			f.File, f.Position.Line, f.Position.Column,
			ruleColor.Sprintf("[%s]", f.Rule), f.Message)
		if err != nil {
			return err
		}
	}

	if len(findings) == 0 {
		_, err := fmt.Fprintln(r.writer, "No violations found")
		return err
	}

	fixable := 0
	for _, f := range findings {
		if len(f.Edits) > 0 {
			fixable++
		}
	}
	_, err := fmt.Fprintf(r.writer, "\nFound %d violations (%d fixable)\n", len(findings), fixable)
	return err
}
