package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dslectures/coursekit/internal/scaffold"
	"github.com/dslectures/coursekit/internal/templates"
)

// NewNewExerciseCmd creates the new-exercise command.
func NewNewExerciseCmd(gc *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "new-exercise <lecture> <name>",
		Short: "Create a new exercise inside a lecture",
		Long: `Create a new exercise below <project>/lectures/<lecture>/exercises/<name>.

The lecture must already exist. The exercise gets a starter notebook and a
code package named after the exercise's identifier.

Examples:
  # Add a second exercise to a lecture
  coursekit new-exercise 01-intro-ml uebung02`,
		Args: positionalArgs("lecture", "name"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScaffold(cmd, gc, scaffold.Request{
				Kind:    templates.Exercise,
				Lecture: args[0],
				Name:    args[1],
			})
		},
	}
}
