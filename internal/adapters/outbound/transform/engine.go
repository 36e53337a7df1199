// Package transform renders the raw checkstyle report through stylesheet
// rules, one artifact per rule.
package transform

import (
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/stylegate/stylegate/internal/domain"
)

// Engine implements domain.ReportTransformer with Go text/template
// stylesheets executed against the parsed report.
type Engine struct{}

// New creates an Engine.
func New() *Engine { return &Engine{} }

// ApplyAll applies every rule independently. The report is re-read per
// rule, so rules share no state; the first failure aborts the whole call.
func (e *Engine) ApplyAll(reportPath string, rules []domain.TransformationRule) error {
	for _, rule := range rules {
		if err := e.apply(reportPath, rule); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) apply(reportPath string, rule domain.TransformationRule) error {
	report, err := domain.ReadReportFile(reportPath)
	if err != nil {
		return err
	}

	tmpl, err := template.ParseFiles(rule.Stylesheet)
	if err != nil {
		return fmt.Errorf("compiling stylesheet %s: %w", rule.Stylesheet, err)
	}

	if err := os.MkdirAll(filepath.Dir(rule.Output), 0755); err != nil {
		return fmt.Errorf("creating output directory for %s: %w", rule.Output, err)
	}

	out, err := os.Create(rule.Output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", rule.Output, err)
	}

	// Close the sink before returning so the artifact is complete even
	// when a later rule fails.
	if err := tmpl.Execute(out, report); err != nil {
		out.Close()
		return fmt.Errorf("applying stylesheet %s: %w", rule.Stylesheet, err)
	}
	return out.Close()
}
