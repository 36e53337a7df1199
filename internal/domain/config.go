package domain

import (
	"fmt"
	"path"
)

// BuildContext identifies which source root the pipeline runs against.
type BuildContext string

const (
	BuildContextMain BuildContext = "main"
	BuildContextTest BuildContext = "test"
)

// ValidBuildContexts enumerates the build contexts the pipeline knows.
var ValidBuildContexts = []BuildContext{BuildContextMain, BuildContextTest}

// Default locations, relative to the project root.
const (
	DefaultRuleset   = "config/checkstyle/checkstyle.xml"
	DefaultReportDir = "build/reports/checkstyle"
)

// TransformationRule maps the raw report to one alternate artifact. The
// stylesheet is a text/template over the parsed report; rules are
// independent of each other and order-free.
type TransformationRule struct {
	Stylesheet string `yaml:"stylesheet" json:"stylesheet"`
	Output     string `yaml:"output"     json:"output"`
}

// ContextConfig configures the pipeline for one build context. Zero
// values inherit from the project-level config, then from built-in
// defaults; see ProjectConfig.ResolveContext.
type ContextConfig struct {
	SourceDir       string               `yaml:"source_dir"      json:"source_dir,omitempty"`
	Ruleset         string               `yaml:"ruleset"         json:"ruleset,omitempty"`
	Output          string               `yaml:"output"          json:"output,omitempty"`
	FailOn          []string             `yaml:"fail_on"         json:"fail_on,omitempty"`
	Transformations []TransformationRule `yaml:"transformations" json:"transformations,omitempty"`
	SARIFOutput     string               `yaml:"sarif_output"    json:"sarif_output,omitempty"`
}

// ProjectConfig holds project-level configuration loaded from .stylegate.yaml.
type ProjectConfig struct {
	AnalyzerBin string        `yaml:"analyzer_bin" json:"analyzer_bin,omitempty"`
	Ruleset     string        `yaml:"ruleset"      json:"ruleset,omitempty"`
	FailOn      []string      `yaml:"fail_on"      json:"fail_on,omitempty"`
	Main        ContextConfig `yaml:"main"         json:"main,omitempty"`
	Test        ContextConfig `yaml:"test"         json:"test,omitempty"`
}

// DefaultConfig returns a zero-value config; all defaults are applied at
// resolution time.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{}
}

// ResolveContext returns the fully-defaulted configuration for one build
// context. A nil FailOn inherits; an explicitly empty one stays empty, so
// `fail_on: []` disables the gate rather than reinstating defaults.
func (c ProjectConfig) ResolveContext(bc BuildContext) (ContextConfig, error) {
	var ctx ContextConfig
	switch bc {
	case BuildContextMain:
		ctx = c.Main
	case BuildContextTest:
		ctx = c.Test
	default:
		return ContextConfig{}, fmt.Errorf("unknown build context %q", bc)
	}

	if ctx.SourceDir == "" {
		ctx.SourceDir = path.Join("src", string(bc))
	}
	if ctx.Ruleset == "" {
		ctx.Ruleset = c.Ruleset
	}
	if ctx.Ruleset == "" {
		ctx.Ruleset = DefaultRuleset
	}
	if ctx.Output == "" {
		ctx.Output = path.Join(DefaultReportDir, string(bc)+".xml")
	}
	if ctx.FailOn == nil {
		ctx.FailOn = c.FailOn
	}
	if ctx.FailOn == nil {
		ctx.FailOn = []string{SeverityWarning, SeverityError}
	}
	return ctx, nil
}

// Validate catches typos in user-supplied raw input before resolution.
func (c ProjectConfig) Validate() error {
	if err := validateSeverities("fail_on", c.FailOn); err != nil {
		return err
	}
	for _, bc := range ValidBuildContexts {
		ctx := c.Main
		if bc == BuildContextTest {
			ctx = c.Test
		}
		if err := validateSeverities(string(bc)+".fail_on", ctx.FailOn); err != nil {
			return err
		}
		for i, rule := range ctx.Transformations {
			if rule.Stylesheet == "" {
				return fmt.Errorf("%s.transformations[%d]: stylesheet is required", bc, i)
			}
			if rule.Output == "" {
				return fmt.Errorf("%s.transformations[%d]: output is required", bc, i)
			}
		}
	}
	return nil
}

func validateSeverities(field string, labels []string) error {
	for _, l := range labels {
		if !IsValidSeverity(l) {
			return fmt.Errorf("%s: unknown severity %q (valid: %v)", field, l, ValidSeverities)
		}
	}
	return nil
}
