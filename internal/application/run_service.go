package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/stylegate/stylegate/internal/domain"
	"github.com/stylegate/stylegate/internal/domain/guard"
)

// RunService orchestrates the build-gate pipeline for one build context:
// analyze -> transform -> (optionally) gate.
type RunService struct {
	analyzer     domain.Analyzer
	transformer  domain.ReportTransformer
	exporter     domain.ReportExporter
	configLoader domain.ConfigLoader
	logger       *zap.SugaredLogger
}

// NewRunService creates a RunService with all required dependencies.
func NewRunService(
	analyzer domain.Analyzer,
	transformer domain.ReportTransformer,
	exporter domain.ReportExporter,
	configLoader domain.ConfigLoader,
	logger *zap.SugaredLogger,
) *RunService {
	return &RunService{
		analyzer:     analyzer,
		transformer:  transformer,
		exporter:     exporter,
		configLoader: configLoader,
		logger:       logger,
	}
}

// Run executes the analysis pipeline for one build context and returns
// the report path. Findings never fail a Run; the report file(s) on disk
// are the only outcome.
func (s *RunService) Run(ctx context.Context, projectPath string, bc domain.BuildContext) (string, error) {
	_, reportPath, err := s.run(ctx, projectPath, bc)
	return reportPath, err
}

// CheckOutcome pairs a gate result with the context and report it was
// computed from.
type CheckOutcome struct {
	Context    domain.BuildContext `json:"context"`
	ReportPath string              `json:"report_path"`
	Gate       domain.GateResult   `json:"gate"`
}

// RunAndCheck performs Run and then gates the produced report. The gate's
// summary lines are logged at warn level; a non-zero issue count is
// returned as a build-stopping error alongside the outcome.
func (s *RunService) RunAndCheck(ctx context.Context, projectPath string, bc domain.BuildContext) (*CheckOutcome, error) {
	ctxCfg, reportPath, err := s.run(ctx, projectPath, bc)
	if err != nil {
		return nil, err
	}

	report, err := domain.ReadReportFile(reportPath)
	if err != nil {
		return nil, err
	}

	result := domain.Evaluate(report, domain.NewSeveritySet(ctxCfg.FailOn...))
	for _, line := range result.SummaryLines {
		s.logger.Warn(line)
	}

	outcome := &CheckOutcome{Context: bc, ReportPath: reportPath, Gate: result}
	if result.Failed() {
		return outcome, fmt.Errorf("%d issue(s) found in Checkstyle report: %s", result.IssuesFound, reportPath)
	}
	return outcome, nil
}

func (s *RunService) run(ctx context.Context, projectPath string, bc domain.BuildContext) (domain.ContextConfig, string, error) {
	// 1. Load and resolve configuration
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return domain.ContextConfig{}, "", fmt.Errorf("loading config: %w", err)
	}
	ctxCfg, err := cfg.ResolveContext(bc)
	if err != nil {
		return domain.ContextConfig{}, "", err
	}

	// 2. Build the request for this context
	req := domain.AnalysisRequest{
		SourceDirectory:  filepath.Join(projectPath, ctxCfg.SourceDir),
		RulesetFile:      filepath.Join(projectPath, ctxCfg.Ruleset),
		OutputReportPath: filepath.Join(projectPath, ctxCfg.Output),
		OutputFormat:     domain.OutputFormatXML,
	}

	// 3. Ensure the output directory exists. MkdirAll is a no-op when it
	// already does.
	if err := os.MkdirAll(filepath.Dir(req.OutputReportPath), 0755); err != nil {
		return domain.ContextConfig{}, "", fmt.Errorf("creating report directory: %w", err)
	}

	// 4. Invoke the analyzer behind the isolation guard so its exit
	// behavior cannot end this process.
	s.logger.Debugf("analyzing %s sources in %s", bc, req.SourceDirectory)
	err = guard.RunIsolated(func() error {
		return s.analyzer.Analyze(ctx, req)
	})
	if err != nil {
		return domain.ContextConfig{}, "", fmt.Errorf("analyzing %s sources: %w", bc, err)
	}

	// 5. Apply configured transformations. Absent and empty both skip.
	if len(ctxCfg.Transformations) > 0 {
		rules := make([]domain.TransformationRule, len(ctxCfg.Transformations))
		for i, r := range ctxCfg.Transformations {
			rules[i] = domain.TransformationRule{
				Stylesheet: filepath.Join(projectPath, r.Stylesheet),
				Output:     filepath.Join(projectPath, r.Output),
			}
		}
		if err := s.transformer.ApplyAll(req.OutputReportPath, rules); err != nil {
			return domain.ContextConfig{}, "", fmt.Errorf("transforming %s report: %w", bc, err)
		}
	}

	// 6. Optional SARIF artifact
	if ctxCfg.SARIFOutput != "" {
		report, err := domain.ReadReportFile(req.OutputReportPath)
		if err != nil {
			return domain.ContextConfig{}, "", err
		}
		dest := filepath.Join(projectPath, ctxCfg.SARIFOutput)
		if err := s.exporter.Export(report, dest); err != nil {
			return domain.ContextConfig{}, "", fmt.Errorf("exporting %s report: %w", bc, err)
		}
	}

	return ctxCfg, req.OutputReportPath, nil
}
