// Package checkstyle invokes the Checkstyle CLI as a child process.
// Running the tool out of process keeps its exit behavior away from the
// host: the child's exit status is observed, never shared.
package checkstyle

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/stylegate/stylegate/internal/domain"
	"github.com/stylegate/stylegate/internal/domain/guard"
)

// DefaultBinary is the analyzer executable resolved from PATH when the
// project config does not name one.
const DefaultBinary = "checkstyle"

// Runner implements domain.Analyzer over the checkstyle command line.
type Runner struct {
	binary string
}

// New creates a Runner for the given executable; empty selects DefaultBinary.
func New(binary string) *Runner {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Runner{binary: binary}
}

// Analyze runs `<binary> -c <ruleset> -f <format> -o <report> <sourcedir>`.
// Checkstyle exits nonzero when it found violations; once the report is on
// disk that status is the tool's termination request and is forwarded
// through guard.Exit. A nonzero exit with no report is a real invocation
// failure and carries the tool's stderr.
func (r *Runner) Analyze(ctx context.Context, req domain.AnalysisRequest) error {
	cmd := exec.CommandContext(ctx, r.binary,
		"-c", req.RulesetFile,
		"-f", string(req.OutputFormat),
		"-o", req.OutputReportPath,
		req.SourceDirectory,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if _, statErr := os.Stat(req.OutputReportPath); statErr == nil {
			guard.Exit(exitErr.ExitCode())
			return nil
		}
	}
	return fmt.Errorf("running %s: %w\nstderr: %s", r.binary, err, stderr.String())
}
