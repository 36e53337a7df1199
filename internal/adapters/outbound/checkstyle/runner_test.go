package checkstyle_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylegate/stylegate/internal/adapters/outbound/checkstyle"
	"github.com/stylegate/stylegate/internal/domain"
	"github.com/stylegate/stylegate/internal/domain/guard"
)

const reportXML = `<checkstyle version="10.12.4">
<file name="Foo.java">
<error line="3" severity="warning" message="Line is longer than 120 characters."/>
</file>
</checkstyle>`

// stubAnalyzer writes a shell script that mimics the checkstyle CLI:
// argv is `-c <ruleset> -f <format> -o <output> <sourcedir>`, so the
// report path is $6.
func stubAnalyzer(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-checkstyle")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755))
	return path
}

func request(t *testing.T) domain.AnalysisRequest {
	dir := t.TempDir()
	return domain.AnalysisRequest{
		SourceDirectory:  dir,
		RulesetFile:      filepath.Join(dir, "checkstyle.xml"),
		OutputReportPath: filepath.Join(dir, "main.xml"),
		OutputFormat:     domain.OutputFormatXML,
	}
}

func TestAnalyze_CleanRun(t *testing.T) {
	bin := stubAnalyzer(t, fmt.Sprintf("cat > \"$6\" <<'XML'\n%s\nXML\nexit 0\n", reportXML))
	req := request(t)

	err := checkstyle.New(bin).Analyze(context.Background(), req)
	require.NoError(t, err)
	assert.FileExists(t, req.OutputReportPath)
}

func TestAnalyze_ViolationExitForwardedThroughGuard(t *testing.T) {
	// Checkstyle exits with the violation count once the report is
	// written; wrapped in the guard, that never ends this process.
	bin := stubAnalyzer(t, fmt.Sprintf("cat > \"$6\" <<'XML'\n%s\nXML\nexit 1\n", reportXML))
	req := request(t)

	err := guard.RunIsolated(func() error {
		return checkstyle.New(bin).Analyze(context.Background(), req)
	})
	require.NoError(t, err)

	report, err := domain.ReadReportFile(req.OutputReportPath)
	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalFindings())
}

func TestAnalyze_FailureWithoutReport(t *testing.T) {
	bin := stubAnalyzer(t, "echo 'could not load ruleset' >&2\nexit 254\n")
	req := request(t)

	err := guard.RunIsolated(func() error {
		return checkstyle.New(bin).Analyze(context.Background(), req)
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not load ruleset")
}

func TestAnalyze_MissingBinary(t *testing.T) {
	req := request(t)
	err := checkstyle.New(filepath.Join(t.TempDir(), "nope")).Analyze(context.Background(), req)
	assert.Error(t, err)
}

func TestNew_DefaultBinary(t *testing.T) {
	// Empty selects the PATH-resolved default.
	assert.NotNil(t, checkstyle.New(""))
}
