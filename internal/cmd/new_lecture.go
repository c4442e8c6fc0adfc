package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dslectures/coursekit/internal/scaffold"
	"github.com/dslectures/coursekit/internal/templates"
)

// NewNewLectureCmd creates the new-lecture command.
func NewNewLectureCmd(gc *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "new-lecture <name>",
		Short: "Create a new lecture",
		Long: `Create a new lecture below <project>/lectures/<name>.

The lecture gets data/{raw,interim,processed}, notebooks, models,
reports/figures, a lecture_code package, requirements.txt, a README and the
starter exercise exercises/uebung01. The directory name is used as given; the
code identifier embedded in the README is derived from it.

Examples:
  # Create a lecture
  coursekit new-lecture 03-neural-networks

  # Fill in files missing from an existing lecture
  coursekit new-lecture 01-intro-ml

  # Print the result as YAML
  coursekit new-lecture 03-neural-networks -o yaml`,
		Args: positionalArgs("name"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScaffold(cmd, gc, scaffold.Request{
				Kind: templates.Lecture,
				Name: args[0],
			})
		},
	}
}
