package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dslectures/coursekit/internal/config"
	oerrors "github.com/dslectures/coursekit/internal/errors"
	"github.com/dslectures/coursekit/internal/output"
	"github.com/dslectures/coursekit/internal/scaffold"
	"github.com/dslectures/coursekit/internal/templates"
)

// fileReport is one file of a scaffold report.
type fileReport struct {
	Path   string `json:"path" yaml:"path"`
	Status string `json:"status" yaml:"status"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// scaffoldReport is the structured output of new-lecture and new-exercise.
type scaffoldReport struct {
	Kind    string       `json:"kind" yaml:"kind"`
	Name    string       `json:"name" yaml:"name"`
	Slug    string       `json:"slug" yaml:"slug"`
	Root    string       `json:"root" yaml:"root"`
	Created int          `json:"created" yaml:"created"`
	Skipped int          `json:"skipped" yaml:"skipped"`
	Failed  int          `json:"failed" yaml:"failed"`
	Files   []fileReport `json:"files" yaml:"files"`
}

// positionalArgs requires exactly the named arguments and reports a
// validation error otherwise.
func positionalArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == len(names) {
			return nil
		}
		return exitError(oerrors.NewValidationError(
			fmt.Sprintf("expected %d argument(s), got %d", len(names), len(args)),
			"", "",
			fmt.Sprintf("Usage: %s", cmd.UseLine()),
		))
	}
}

// runScaffold discovers the project, scaffolds the unit and prints the result.
func runScaffold(cmd *cobra.Command, gc *GlobalConfig, req scaffold.Request) error {
	// Reject bad names before looking at the filesystem.
	if req.Kind == templates.Exercise {
		if err := templates.ValidateUnitName(req.Lecture); err != nil {
			return exitError(err)
		}
	}
	if err := templates.ValidateUnitName(req.Name); err != nil {
		return exitError(err)
	}
	if _, err := templates.Normalize(req.Name); err != nil {
		return exitError(err)
	}

	layout, err := courseLayout(gc)
	if err != nil {
		return exitError(err)
	}

	paths, err := config.DiscoverPaths(gc.Start, layout)
	if err != nil {
		return exitError(err)
	}
	req.Root = paths.Lectures
	output.Debug("project discovered", "root", paths.ProjectRoot, "lectures", paths.Lectures)

	logger := output.Logger().WithPrefix(fmt.Sprintf("%s %s", req.Kind, req.Name))
	engine := scaffold.New(scaffold.WithLogger(logger))

	var result *scaffold.Result
	runErr := output.RunWithSpinner(cmd.Context(), func() error {
		var err error
		result, err = engine.Scaffold(cmd.Context(), req)
		return err
	}, output.WithTitle(fmt.Sprintf("Scaffolding %s %s", req.Kind, req.Name)))

	if result != nil {
		if err := printResult(gc.Output, result); err != nil {
			return exitError(err)
		}
	}
	return exitError(runErr)
}

func newReport(result *scaffold.Result) scaffoldReport {
	report := scaffoldReport{
		Kind:    result.Kind.String(),
		Name:    result.Name,
		Slug:    result.Slug,
		Root:    result.Root,
		Created: result.Count(scaffold.StatusCreated),
		Skipped: result.Count(scaffold.StatusSkipped),
		Failed:  result.Count(scaffold.StatusFailed),
		Files:   make([]fileReport, 0, len(result.Outcomes)),
	}
	for _, o := range result.Outcomes {
		f := fileReport{Path: result.Rel(o), Status: string(o.Status)}
		if o.Err != nil {
			f.Error = shortError(o.Err)
		}
		report.Files = append(report.Files, f)
	}
	return report
}

func printResult(format output.OutputFormat, result *scaffold.Result) error {
	report := newReport(result)

	if format != output.FormatText {
		return output.WriteStructured(output.Stdout(), format, report)
	}

	statuses := make(map[string]string, len(report.Files))
	for _, f := range report.Files {
		statuses[f.Path] = f.Status
	}
	output.Print(output.RenderStatusTree(filepath.Base(report.Root), statuses))

	kind := strings.ToUpper(report.Kind[:1]) + report.Kind[1:]
	summary := fmt.Sprintf("%s %s at %s (%d created, %d skipped)",
		kind, output.StyleNoun.Render(report.Name), report.Root, report.Created, report.Skipped)
	if report.Failed > 0 {
		output.Println(output.FormatCross(fmt.Sprintf("%s, %d failed", summary, report.Failed)))
		return nil
	}
	output.Println(output.FormatCheckmark(summary))
	return nil
}

// shortError returns the one-line message of err.
func shortError(err error) string {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		return detail.Message
	}
	return err.Error()
}
