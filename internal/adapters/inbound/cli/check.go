package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stylegate/stylegate/internal/adapters/outbound/tui"
)

func newCheckCmd() *cobra.Command {
	var (
		contextFlag string
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Run the analyzer and fail on findings",
		Long:  "Run the analyzer like `run`, then gate the report: every finding whose severity is in the context's fail_on set is logged, and any match stops the build.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath, contexts, svc, cleanup, err := setupPipeline(args, contextFlag)
			if err != nil {
				return err
			}
			defer cleanup()

			var failure error
			for _, bc := range contexts {
				outcome, err := svc.RunAndCheck(cmd.Context(), projectPath, bc)
				if outcome == nil {
					// Pipeline failure before the gate ran.
					return fmt.Errorf("check %s: %w", bc, err)
				}

				if jsonOutput {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					if encErr := enc.Encode(outcome); encErr != nil {
						return encErr
					}
				} else {
					fmt.Fprint(cmd.OutOrStdout(), tui.RenderGateResult(outcome.Context, &outcome.Gate, outcome.ReportPath))
				}

				// Keep checking the remaining contexts; surface the first
				// gate failure once all have run.
				if err != nil && failure == nil {
					failure = err
				}
			}
			return failure
		},
	}

	cmd.Flags().StringVar(&contextFlag, "context", "main", "Build context to check: main, test, or all")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output gate results as JSON")

	return cmd
}
