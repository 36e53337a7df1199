package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

var debugMode bool

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stylegate",
		Short: "Report-driven style gate for your build",
		Long:  "Stylegate runs a Checkstyle-compatible analyzer over your sources, captures its XML report, post-processes it, and fails the build on findings you care about.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newCheckCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
