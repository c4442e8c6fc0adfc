package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dslectures/coursekit/internal/config"
	oerrors "github.com/dslectures/coursekit/internal/errors"
	"github.com/dslectures/coursekit/internal/output"
)

// configHeader is written at the top of a generated config file.
const configHeader = `# coursekit configuration
#
# marker       file that marks the project root
# lecturesDir  lectures root, relative to the project root
# commonDir    shared code, relative to the project root
# docsDir      documentation, relative to the project root
# log          logging settings

`

// NewConfigCmd creates the config command group.
func NewConfigCmd(gc *GlobalConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the coursekit CLI.`,
	}

	cmd.AddCommand(NewConfigInitCmd(gc))
	cmd.AddCommand(NewConfigVetCmd(gc))

	return cmd
}

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(gc *GlobalConfig) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write a configuration file with default values.

The file is created at the resolved config path:
  --config flag > COURSEKIT_CONFIG env > ~/.coursekit/config.yaml

Examples:
  # Initialize configuration
  coursekit config init

  # Overwrite existing configuration
  coursekit config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return exitError(runConfigInit(gc, force))
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return cmd
}

func runConfigInit(gc *GlobalConfig, force bool) error {
	path, err := config.ExpandPath(gc.ConfigPath)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return oerrors.NewIOError("checking config file", path, err)
	}
	if exists && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte(configHeader), data...)

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return oerrors.NewIOError("creating config directory", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return oerrors.NewIOError("writing config file", path, err)
	}

	output.Println(output.FormatCheckmark("Configuration initialized at " + path))
	output.Println("Validate with: coursekit config vet")
	return nil
}

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(gc *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the coursekit configuration file against its schema.

Checks performed:
  1. Config file exists at the resolved path
  2. Config file is valid YAML
  3. Only known fields are set and every value has the right type
  4. Directories are relative and stay inside the project

Examples:
  # Validate default configuration
  coursekit config vet

  # Validate custom config path
  coursekit config vet --config /path/to/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return exitError(runConfigVet(gc))
		},
	}
}

func runConfigVet(gc *GlobalConfig) error {
	output.Debug("validating config", "path", gc.ConfigPath)

	validator, err := config.NewValidator()
	if err != nil {
		return err
	}

	if err := validator.ValidateFile(gc.ConfigPath); err != nil {
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			for _, e := range verrs {
				output.Error("invalid config value", "field", e.Field, "error", e.Message)
			}
			return &oerrors.ExitError{Code: ExitValidationError, Err: err, Printed: true}
		}
		if errors.Is(err, fs.ErrPermission) {
			return &oerrors.ExitError{Code: ExitPermissionDenied, Err: err}
		}
		return err
	}

	output.Println(output.FormatCheckmark("Configuration is valid: " + gc.ConfigPath))
	return nil
}
