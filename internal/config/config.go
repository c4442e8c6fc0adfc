// Package config provides configuration loading and management.
package config

// Default layout values, matching a ds-lectures style repository.
const (
	DefaultMarker      = "pyproject.toml"
	DefaultLecturesDir = "lectures"
	DefaultCommonDir   = "common"
	DefaultDocsDir     = "docs"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the coursekit configuration.
// Loaded from ~/.coursekit/config.yaml, validated against embedded CUE schema.
type Config struct {
	// Marker is the file that identifies the project root.
	// Env: COURSEKIT_MARKER, Default: pyproject.toml
	Marker string `json:"marker,omitempty" yaml:"marker,omitempty" mapstructure:"marker"`

	// LecturesDir is the lectures root relative to the project root.
	// Env: COURSEKIT_LECTURES_DIR, Default: lectures
	LecturesDir string `json:"lecturesDir,omitempty" yaml:"lecturesDir,omitempty" mapstructure:"lecturesDir"`

	// CommonDir is the shared code directory relative to the project root.
	CommonDir string `json:"commonDir,omitempty" yaml:"commonDir,omitempty" mapstructure:"commonDir"`

	// DocsDir is the documentation directory relative to the project root.
	DocsDir string `json:"docsDir,omitempty" yaml:"docsDir,omitempty" mapstructure:"docsDir"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty" mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `coursekit config init` to generate initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		Marker:      DefaultMarker,
		LecturesDir: DefaultLecturesDir,
		CommonDir:   DefaultCommonDir,
		DocsDir:     DefaultDocsDir,
		Log: LogConfig{
			Timestamps: &timestamps,
		},
	}
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	def := DefaultConfig()
	if out.Marker == "" {
		out.Marker = def.Marker
	}
	if out.LecturesDir == "" {
		out.LecturesDir = def.LecturesDir
	}
	if out.CommonDir == "" {
		out.CommonDir = def.CommonDir
	}
	if out.DocsDir == "" {
		out.DocsDir = def.DocsDir
	}
	if out.Log.Timestamps == nil {
		out.Log.Timestamps = def.Log.Timestamps
	}
	return &out
}

// Layout returns the project layout described by the config.
func (c *Config) Layout() Layout {
	d := c.WithDefaults()
	return Layout{
		Marker:      d.Marker,
		LecturesDir: d.LecturesDir,
		CommonDir:   d.CommonDir,
		DocsDir:     d.DocsDir,
	}
}

// ResolvedValue records the final value of a setting and where it came from.
type ResolvedValue struct {
	Key      string
	Value    any
	Source   string
	Shadowed map[string]any
}
