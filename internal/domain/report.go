package domain

import (
	"encoding/xml"
	"fmt"
	"os"
)

// Report is the parsed form of one checkstyle XML report: findings grouped
// by source file, in the order the analyzer emitted them.
type Report struct {
	XMLName xml.Name    `xml:"checkstyle" json:"-"`
	Version string      `xml:"version,attr" json:"version,omitempty"`
	Files   []FileEntry `xml:"file" json:"files"`
}

// FileEntry groups the findings reported against a single source file.
// An entry with no findings is a clean file, still reportable.
type FileEntry struct {
	Name     string    `xml:"name,attr" json:"name"`
	Findings []Finding `xml:"error" json:"findings,omitempty"`
}

// Finding is a single rule violation. It is produced by the external
// analyzer and read-only here.
type Finding struct {
	Line     int    `xml:"line,attr" json:"line,omitempty"`
	Column   int    `xml:"column,attr" json:"column,omitempty"`
	Severity string `xml:"severity,attr" json:"severity"`
	Message  string `xml:"message,attr" json:"message"`
	Source   string `xml:"source,attr" json:"source,omitempty"`
}

// TotalFindings counts every finding in the report regardless of severity.
func (r *Report) TotalFindings() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Findings)
	}
	return n
}

// ParseReport decodes a checkstyle XML document.
func ParseReport(data []byte) (*Report, error) {
	var r Report
	if err := xml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing checkstyle report: %w", err)
	}
	return &r, nil
}

// ReadReportFile loads and parses a report from disk. A missing or
// malformed report is fatal with no retry: the report is written by the
// preceding pipeline step in the same invocation.
func ReadReportFile(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading checkstyle report %s: %w", path, err)
	}
	return ParseReport(data)
}
