package reporter

import (
	"io"
	"path/filepath"
	"sort"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"
)

// Default SARIF tool information.
const (
	defaultToolName = "jstyle"
	defaultToolURI  = "https://github.com/wharflab/jstyle"
)

// SARIFReporter formats findings as SARIF v2.1.0, the interchange format
// understood by GitHub Code Scanning and most CI systems.
//
// See: https://docs.oasis-open.org/sarif/sarif/v2.1.0/
type SARIFReporter struct {
	writer      io.Writer
	toolVersion string
}

// NewSARIFReporter creates a SARIF reporter.
func NewSARIFReporter(w io.Writer, toolVersion string) *SARIFReporter {
	return &SARIFReporter{writer: w, toolVersion: toolVersion}
}

// Report writes a single-run SARIF document.
func (r *SARIFReporter) Report(findings []Finding) error {
	report := sarif.NewReport()

	run := sarif.NewRunWithInformationURI(defaultToolName, defaultToolURI)
	if r.toolVersion != "" {
		run.Tool.Driver.WithVersion(r.toolVersion)
	}

	ruleSet := make(map[string]struct{})
	fileSet := make(map[string]struct{})
	for _, f := range findings {
		ruleSet[f.Rule] = struct{}{}
		fileSet[filepath.ToSlash(f.File)] = struct{}{}
	}

	ruleIDs := make([]string, 0, len(ruleSet))
	for id := range ruleSet {
		ruleIDs = append(ruleIDs, id)
	}
	sort.Strings(ruleIDs)
	for _, id := range ruleIDs {
		run.AddRule(id)
	}

	files := make([]string, 0, len(fileSet))
	for file := range fileSet {
		files = append(files, file)
	}
	sort.Strings(files)
	for _, file := range files {
		run.AddDistinctArtifact(file)
	}

	for _, f := range findings {
		filePath := filepath.ToSlash(f.File)

		region := sarif.NewRegion().
			WithStartLine(f.Position.Line).
			WithStartColumn(f.Position.Column)

		physicalLocation := sarif.NewPhysicalLocation().
			WithArtifactLocation(sarif.NewSimpleArtifactLocation(filePath)).
			WithRegion(region)

		result := sarif.NewRuleResult(f.Rule).
			WithMessage(sarif.NewTextMessage(f.Message)).
			WithLevel("warning").
			WithLocations([]*sarif.Location{
				sarif.NewLocationWithPhysicalLocation(physicalLocation),
			})

		run.AddResult(result)
	}

	report.AddRun(run)
	return report.PrettyWrite(r.writer)
}
