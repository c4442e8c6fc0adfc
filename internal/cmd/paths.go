package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dslectures/coursekit/internal/config"
	"github.com/dslectures/coursekit/internal/output"
	"github.com/dslectures/coursekit/internal/templates"
)

// pathsReport is the structured output of the paths command.
type pathsReport struct {
	Project *config.ProjectPaths `json:"project" yaml:"project"`
	Lecture *config.LecturePaths `json:"lecture,omitempty" yaml:"lecture,omitempty"`
}

// NewPathsCmd creates the paths command.
func NewPathsCmd(gc *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "paths [lecture]",
		Short: "Show discovered project paths",
		Long: `Show the project root found from --root and the lectures, common and
docs directories. With a lecture name, also show the lecture's data,
notebook, model and report directories.

Examples:
  coursekit paths
  coursekit paths 01-intro-ml -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exitError(runPaths(gc, args))
		},
	}
}

func runPaths(gc *GlobalConfig, args []string) error {
	layout, err := courseLayout(gc)
	if err != nil {
		return err
	}

	project, err := config.DiscoverPaths(gc.Start, layout)
	if err != nil {
		return err
	}

	report := pathsReport{Project: project}
	if len(args) == 1 {
		if err := templates.ValidateUnitName(args[0]); err != nil {
			return err
		}
		lecture := project.ForLecture(args[0])
		report.Lecture = &lecture
	}

	if gc.Output != output.FormatText {
		return output.WriteStructured(output.Stdout(), gc.Output, report)
	}

	entries := []output.PathEntry{
		{Name: "project", Path: project.ProjectRoot},
		{Name: "lectures", Path: project.Lectures},
		{Name: "common", Path: project.Common},
		{Name: "docs", Path: project.Docs},
	}
	if l := report.Lecture; l != nil {
		entries = append(entries,
			output.PathEntry{Name: "lecture", Path: l.Root},
			output.PathEntry{Name: "data", Path: l.Data},
			output.PathEntry{Name: "raw", Path: l.Raw},
			output.PathEntry{Name: "interim", Path: l.Interim},
			output.PathEntry{Name: "processed", Path: l.Processed},
			output.PathEntry{Name: "notebooks", Path: l.Notebooks},
			output.PathEntry{Name: "models", Path: l.Models},
			output.PathEntry{Name: "reports", Path: l.Reports},
			output.PathEntry{Name: "exercises", Path: l.Exercises},
		)
	}
	output.Println(output.RenderPathsTable(entries))

	if report.Lecture != nil {
		if info, err := os.Stat(report.Lecture.Root); err != nil || !info.IsDir() {
			output.Warn("lecture does not exist yet", "path", report.Lecture.Root)
		}
	}
	return nil
}
