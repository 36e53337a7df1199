package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylegate/stylegate/internal/domain"
)

func TestResolveContext_Defaults(t *testing.T) {
	cfg := domain.DefaultConfig()

	main, err := cfg.ResolveContext(domain.BuildContextMain)
	require.NoError(t, err)
	assert.Equal(t, "src/main", main.SourceDir)
	assert.Equal(t, domain.DefaultRuleset, main.Ruleset)
	assert.Equal(t, "build/reports/checkstyle/main.xml", main.Output)
	assert.Equal(t, []string{"warning", "error"}, main.FailOn)
	assert.Empty(t, main.Transformations)

	test, err := cfg.ResolveContext(domain.BuildContextTest)
	require.NoError(t, err)
	assert.Equal(t, "src/test", test.SourceDir)
	assert.Equal(t, "build/reports/checkstyle/test.xml", test.Output)
}

func TestResolveContext_InheritsProjectLevel(t *testing.T) {
	cfg := domain.ProjectConfig{
		Ruleset: "rules/style.xml",
		FailOn:  []string{"error"},
	}

	ctx, err := cfg.ResolveContext(domain.BuildContextTest)
	require.NoError(t, err)
	assert.Equal(t, "rules/style.xml", ctx.Ruleset)
	assert.Equal(t, []string{"error"}, ctx.FailOn)
}

func TestResolveContext_ContextOverridesWin(t *testing.T) {
	cfg := domain.ProjectConfig{
		Ruleset: "rules/style.xml",
		Main: domain.ContextConfig{
			Ruleset:   "rules/strict.xml",
			SourceDir: "lib",
			Output:    "out/main.xml",
		},
	}

	ctx, err := cfg.ResolveContext(domain.BuildContextMain)
	require.NoError(t, err)
	assert.Equal(t, "rules/strict.xml", ctx.Ruleset)
	assert.Equal(t, "lib", ctx.SourceDir)
	assert.Equal(t, "out/main.xml", ctx.Output)
}

func TestResolveContext_ExplicitEmptyFailOnStaysEmpty(t *testing.T) {
	// fail_on: [] disables the gate; it must not reinstate defaults.
	cfg := domain.ProjectConfig{
		Main: domain.ContextConfig{FailOn: []string{}},
	}

	ctx, err := cfg.ResolveContext(domain.BuildContextMain)
	require.NoError(t, err)
	assert.NotNil(t, ctx.FailOn)
	assert.Empty(t, ctx.FailOn)
}

func TestResolveContext_UnknownContext(t *testing.T) {
	_, err := domain.DefaultConfig().ResolveContext("integration")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "integration")
}

func TestValidate(t *testing.T) {
	valid := domain.ProjectConfig{
		FailOn: []string{"warning", "error"},
		Main: domain.ContextConfig{
			FailOn: []string{"error"},
			Transformations: []domain.TransformationRule{
				{Stylesheet: "templates/html.tmpl", Output: "out/main.html"},
			},
		},
	}
	assert.NoError(t, valid.Validate())

	badSeverity := domain.ProjectConfig{FailOn: []string{"fatal"}}
	err := badSeverity.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fatal")

	badRule := domain.ProjectConfig{
		Test: domain.ContextConfig{
			Transformations: []domain.TransformationRule{{Output: "out.html"}},
		},
	}
	err = badRule.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stylesheet is required")
}
