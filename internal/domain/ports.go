package domain

import "context"

// OutputFormat selects the analyzer's report format. Only XML is emitted.
type OutputFormat string

const OutputFormatXML OutputFormat = "xml"

// AnalysisRequest describes one analyzer invocation. Immutable per
// invocation; built fresh for each build context.
type AnalysisRequest struct {
	SourceDirectory  string       `json:"source_directory"`
	RulesetFile      string       `json:"ruleset_file"`
	OutputReportPath string       `json:"output_report_path"`
	OutputFormat     OutputFormat `json:"output_format"`
}

// Analyzer runs the style analyzer for one AnalysisRequest and leaves the
// XML report at req.OutputReportPath. Implementations may signal
// completion through guard.Exit instead of returning; callers wrap
// Analyze in guard.RunIsolated.
type Analyzer interface {
	Analyze(ctx context.Context, req AnalysisRequest) error
}

// ReportTransformer applies a set of transformation rules to a report on
// disk, writing one artifact per rule.
type ReportTransformer interface {
	ApplyAll(reportPath string, rules []TransformationRule) error
}

// ReportExporter writes a parsed report to an alternate format at dest.
type ReportExporter interface {
	Export(report *Report, dest string) error
}

// ConfigLoader loads project configuration from a project root.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}
