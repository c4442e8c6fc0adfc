package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dslectures/coursekit/internal/output"
	"github.com/dslectures/coursekit/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(gc *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show coursekit version information.

Displays:
  - coursekit version, commit, and build date
  - Go and CUE SDK versions`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			if gc.Output != output.FormatText && gc.Output != "" {
				return exitError(output.WriteStructured(output.Stdout(), gc.Output, info))
			}
			output.Println(info.String())
			return nil
		},
	}
}
