package config

import (
	"os"

	"github.com/dslectures/coursekit/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolveStartOptions contains options for start directory resolution.
type ResolveStartOptions struct {
	// FlagValue is the --root flag value (empty if not set).
	FlagValue string
}

// ResolveStartResult contains the resolved start directory and its source.
type ResolveStartResult struct {
	// Start is the directory project discovery starts from.
	Start string
	// Source indicates where the directory came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveStart resolves the discovery start directory using precedence:
// (1) --root flag, (2) COURSEKIT_ROOT env, (3) the working directory.
func ResolveStart(opts ResolveStartOptions) (ResolveStartResult, error) {
	result := ResolveStartResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(EnvRoot)

	cwd, err := os.Getwd()
	if err != nil {
		return result, err
	}

	switch {
	case opts.FlagValue != "":
		result.Start = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = cwd
	case envValue != "":
		result.Start = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = cwd
	default:
		result.Start = cwd
		result.Source = SourceDefault
	}

	return result, nil
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) COURSEKIT_CONFIG env, (3) ~/.coursekit/config.yaml
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(EnvConfig)

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	if opts.FlagValue != "" {
		result.ConfigPath = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	} else if envValue != "" {
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	} else {
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// ResolveTimestamps decides whether log lines carry timestamps:
// (1) --timestamps flag, (2) log.timestamps in config, (3) true.
func ResolveTimestamps(flag, cfg *bool) ResolvedValue {
	rv := ResolvedValue{
		Key:      "log.timestamps",
		Shadowed: make(map[string]any),
	}

	switch {
	case flag != nil:
		rv.Value = *flag
		rv.Source = string(SourceFlag)
		if cfg != nil {
			rv.Shadowed[string(SourceConfig)] = *cfg
		}
	case cfg != nil:
		rv.Value = *cfg
		rv.Source = string(SourceConfig)
	default:
		rv.Value = true
		rv.Source = string(SourceDefault)
	}
	return rv
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
