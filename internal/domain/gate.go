package domain

import "fmt"

// GateResult holds the outcome of one severity-gate evaluation. It is
// computed once per check invocation and consumed immediately.
type GateResult struct {
	IssuesFound  int      `json:"issues_found"`
	SummaryLines []string `json:"summary_lines,omitempty"`
}

// Failed reports whether the gate should stop the build.
func (g GateResult) Failed() bool { return g.IssuesFound > 0 }

// Evaluate walks every file entry and finding in document order, counting
// the findings whose severity is in the failing set. One summary line per
// matching finding, carrying severity, file path, and message.
func Evaluate(report *Report, failing SeveritySet) GateResult {
	var result GateResult
	for _, file := range report.Files {
		for _, f := range file.Findings {
			if !failing.Contains(f.Severity) {
				continue
			}
			result.IssuesFound++
			result.SummaryLines = append(result.SummaryLines, summaryLine(file, f))
		}
	}
	return result
}

func summaryLine(file FileEntry, f Finding) string {
	if f.Line > 0 {
		return fmt.Sprintf("[%s] %s:%d: %s", f.Severity, file.Name, f.Line, f.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", f.Severity, file.Name, f.Message)
}
