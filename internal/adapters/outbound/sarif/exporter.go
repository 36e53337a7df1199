// Package sarif converts a checkstyle report into a SARIF 2.1.0 log so
// findings can flow into code-scanning UIs.
package sarif

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stylegate/stylegate/internal/domain"
)

const schemaURI = "https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json"

type Log struct {
	Version string `json:"version"`
	Schema  string `json:"$schema"`
	Runs    []Run  `json:"runs"`
}

type Run struct {
	Tool    Tool     `json:"tool"`
	Results []Result `json:"results"`
}

type Tool struct {
	Driver Driver `json:"driver"`
}

type Driver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type Result struct {
	RuleID    string     `json:"ruleId"`
	Level     string     `json:"level"` // error, warning, note
	Message   Message    `json:"message"`
	Locations []Location `json:"locations"`
}

type Message struct {
	Text string `json:"text"`
}

type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           Region           `json:"region"`
}

type ArtifactLocation struct {
	URI string `json:"uri"`
}

type Region struct {
	StartLine int `json:"startLine"`
}

// Exporter implements domain.ReportExporter.
type Exporter struct {
	toolVersion string
}

// New creates an Exporter stamping toolVersion into the SARIF driver.
func New(toolVersion string) *Exporter {
	return &Exporter{toolVersion: toolVersion}
}

// Export writes report as a SARIF 2.1.0 log at dest.
func (e *Exporter) Export(report *domain.Report, dest string) error {
	results := make([]Result, 0, report.TotalFindings())
	for _, file := range report.Files {
		for _, f := range file.Findings {
			start := f.Line
			if start <= 0 {
				start = 1
			}
			results = append(results, Result{
				RuleID:  ruleID(f.Source),
				Level:   sevToLevel(f.Severity),
				Message: Message{Text: strings.TrimSpace(f.Message)},
				Locations: []Location{{
					PhysicalLocation: PhysicalLocation{
						ArtifactLocation: ArtifactLocation{URI: filepath.ToSlash(file.Name)},
						Region:           Region{StartLine: start},
					},
				}},
			})
		}
	}

	log := Log{
		Version: "2.1.0",
		Schema:  schemaURI,
		Runs: []Run{{
			Tool: Tool{Driver: Driver{
				Name:    "stylegate",
				Version: e.toolVersion,
			}},
			Results: results,
		}},
	}

	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding SARIF: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0644)
}

// ruleID shortens a checkstyle source class to its final segment, e.g.
// com.puppycrawl.tools.checkstyle.checks.FinalLocalVariableCheck ->
// FinalLocalVariableCheck.
func ruleID(source string) string {
	if source == "" {
		return "checkstyle"
	}
	if i := strings.LastIndex(source, "."); i >= 0 {
		return source[i+1:]
	}
	return source
}

func sevToLevel(severity string) string {
	switch severity {
	case domain.SeverityError:
		return "error"
	case domain.SeverityWarning:
		return "warning"
	default:
		return "note"
	}
}
