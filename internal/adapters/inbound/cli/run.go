package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stylegate/stylegate/internal/adapters/outbound/checkstyle"
	"github.com/stylegate/stylegate/internal/adapters/outbound/config"
	"github.com/stylegate/stylegate/internal/adapters/outbound/logging"
	"github.com/stylegate/stylegate/internal/adapters/outbound/sarif"
	"github.com/stylegate/stylegate/internal/adapters/outbound/transform"
	"github.com/stylegate/stylegate/internal/application"
	"github.com/stylegate/stylegate/internal/domain"
)

func newRunCmd() *cobra.Command {
	var contextFlag string

	cmd := &cobra.Command{
		Use:   "run [path]",
		Short: "Run the style analyzer and write its report",
		Long:  "Run the configured analyzer over the given build context(s) and leave the XML report plus any configured transformed artifacts on disk. Findings never fail a run.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath, contexts, svc, cleanup, err := setupPipeline(args, contextFlag)
			if err != nil {
				return err
			}
			defer cleanup()

			for _, bc := range contexts {
				reportPath, err := svc.Run(cmd.Context(), projectPath, bc)
				if err != nil {
					return fmt.Errorf("run %s: %w", bc, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s report: %s\n", bc, reportPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&contextFlag, "context", "main", "Build context to analyze: main, test, or all")

	return cmd
}

// setupPipeline resolves the project path, parses the --context flag, and
// wires the pipeline service the way every command uses it.
func setupPipeline(args []string, contextFlag string) (string, []domain.BuildContext, *application.RunService, func(), error) {
	projectPath := "."
	if len(args) == 1 {
		projectPath = args[0]
	}
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return "", nil, nil, nil, fmt.Errorf("resolving path: %w", err)
	}

	contexts, err := parseContexts(contextFlag)
	if err != nil {
		return "", nil, nil, nil, err
	}

	logger, err := logging.New(debugMode)
	if err != nil {
		return "", nil, nil, nil, fmt.Errorf("initializing logger: %w", err)
	}

	cfgLoader := config.New()
	cfg, err := cfgLoader.Load(absPath)
	if err != nil {
		return "", nil, nil, nil, err
	}

	svc := application.NewRunService(
		checkstyle.New(cfg.AnalyzerBin),
		transform.New(),
		sarif.New(version),
		cfgLoader,
		logger,
	)

	cleanup := func() { _ = logger.Sync() }
	return absPath, contexts, svc, cleanup, nil
}

func parseContexts(flag string) ([]domain.BuildContext, error) {
	switch flag {
	case "all":
		return domain.ValidBuildContexts, nil
	case string(domain.BuildContextMain), string(domain.BuildContextTest):
		return []domain.BuildContext{domain.BuildContext(flag)}, nil
	default:
		return nil, fmt.Errorf("unknown build context %q (valid: main, test, all)", flag)
	}
}
