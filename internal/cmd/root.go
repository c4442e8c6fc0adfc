// Package cmd provides CLI command implementations.
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dslectures/coursekit/internal/config"
	oerrors "github.com/dslectures/coursekit/internal/errors"
	"github.com/dslectures/coursekit/internal/output"
	"github.com/dslectures/coursekit/internal/templates"
	"github.com/dslectures/coursekit/internal/version"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded config with defaults applied.
	Config *config.Config

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// Start is the directory project discovery starts from.
	Start string

	// Output is the requested output format.
	Output output.OutputFormat

	// Verbose enables debug logging.
	Verbose bool
}

type rootFlags struct {
	root       string
	config     string
	output     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the coursekit CLI.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	gc := &GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "coursekit",
		Short: "Scaffold lectures and exercises for a data science course",
		Long: `coursekit creates lecture and exercise skeletons inside a course repository.

The project root is the nearest directory above --root (default: the current
directory) that contains the marker file, pyproject.toml by default. Lectures
live in <project>/lectures.

Existing files are never overwritten, so re-running a command only fills in
what is missing.

Unit kinds:
` + unitKindsHelp(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return exitError(initializeGlobals(cmd, &flags, gc))
		},
	}

	// Unknown or malformed flags are usage errors, like a wrong argument count.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return exitError(oerrors.Wrap(oerrors.ErrValidation, err.Error()))
	})

	rootCmd.PersistentFlags().StringVar(&flags.root, "root", "", "Directory to start project discovery from (env: COURSEKIT_ROOT)")
	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: COURSEKIT_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "text",
		fmt.Sprintf("Output format: %s", strings.Join(output.ValidFormats(), ", ")))
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewNewLectureCmd(gc))
	rootCmd.AddCommand(NewNewExerciseCmd(gc))
	rootCmd.AddCommand(NewPathsCmd(gc))
	rootCmd.AddCommand(NewConfigCmd(gc))
	rootCmd.AddCommand(NewVersionCmd(gc))

	return rootCmd
}

// initializeGlobals resolves flags, loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command, flags *rootFlags, gc *GlobalConfig) error {
	format, ok := output.ParseOutputFormat(flags.output)
	if !ok {
		return oerrors.NewValidationError(
			fmt.Sprintf("unknown output format %q", flags.output),
			"", "output",
			fmt.Sprintf("Valid formats: %s", strings.Join(output.ValidFormats(), ", ")),
		)
	}

	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: flags.config,
	})
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	loaded, err := config.NewLoader().Load(pathResult.ConfigPath)
	if err != nil {
		// Commands like `config init` must work with a broken config file.
		output.Debug("config load error", "error", err)
		loaded = &config.Config{}
	}

	startResult, err := config.ResolveStart(config.ResolveStartOptions{
		FlagValue: flags.root,
	})
	if err != nil {
		return fmt.Errorf("resolving start directory: %w", err)
	}

	// Resolve timestamps: flag (if explicitly set) > config > default (true)
	var timestampsFlag *bool
	if cmd.Flags().Changed("timestamps") {
		timestampsFlag = output.BoolPtr(flags.timestamps)
	}
	timestamps := config.ResolveTimestamps(timestampsFlag, loaded.Log.Timestamps)

	output.SetupLogging(output.LogConfig{
		Verbose:    flags.verbose,
		Timestamps: output.BoolPtr(timestamps.Value.(bool)),
	})

	gc.Config = loaded.WithDefaults()
	gc.ConfigPath = pathResult.ConfigPath
	gc.Start = startResult.Start
	gc.Output = format
	gc.Verbose = flags.verbose

	if flags.verbose {
		info := version.Get()
		output.Debug("coursekit started", "version", info.Version, "cue_sdk", info.CUESDKVersion)
		config.LogResolvedValues([]config.ResolvedValue{
			{Key: "config", Value: pathResult.ConfigPath, Source: string(pathResult.Source), Shadowed: shadowed(pathResult.Shadowed)},
			{Key: "root", Value: startResult.Start, Source: string(startResult.Source), Shadowed: shadowed(startResult.Shadowed)},
			timestamps,
		})
	}

	return nil
}

// courseLayout checks the loaded config against the schema and returns the
// project layout it describes. Directories that are absolute or escape the
// project are rejected.
func courseLayout(gc *GlobalConfig) (config.Layout, error) {
	validator, err := config.NewValidator()
	if err != nil {
		return config.Layout{}, err
	}

	if err := validator.Validate(gc.Config); err != nil {
		msg := err.Error()
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, e := range verrs {
				fields = append(fields, e.Error())
			}
			msg = strings.Join(fields, "; ")
		}
		return config.Layout{}, &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "invalid configuration: " + msg,
			Location: gc.ConfigPath,
			Hint:     "Check the file with: coursekit config vet",
			Cause:    oerrors.ErrValidation,
		}
	}
	return gc.Config.Layout(), nil
}

// unitKindsHelp lists the registered unit kinds for the root help text.
func unitKindsHelp() string {
	var sb strings.Builder
	for _, kind := range templates.Kinds() {
		info, err := templates.Describe(kind)
		if err != nil {
			continue
		}
		fmt.Fprintf(&sb, "  %-10s %s\n", kind, info.Description)
	}
	return sb.String()
}

func shadowed(in map[config.ConfigSource]string) map[string]any {
	out := make(map[string]any, len(in))
	for source, value := range in {
		out[string(source)] = value
	}
	return out
}
