package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/encoding/yaml"

	oerrors "github.com/dslectures/coursekit/internal/errors"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Is reports ErrValidation so callers can map the exit code.
func (e ValidationErrors) Is(target error) bool {
	return target == oerrors.ErrValidation
}

// Validator validates configuration against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator creates a new configuration validator.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	file := ctx.CompileBytes(configSchemaCUE, cue.Filename("schema.cue"))
	if file.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", file.Err())
	}

	schema := file.LookupPath(cue.ParsePath("#Config"))
	if !schema.Exists() {
		return nil, fmt.Errorf("schema has no #Config definition")
	}

	return &Validator{
		ctx:    ctx,
		schema: schema,
	}, nil
}

// Validate validates the given configuration.
func (v *Validator) Validate(cfg *Config) error {
	value := v.ctx.Encode(cfg)
	if value.Err() != nil {
		return fmt.Errorf("encoding config: %w", value.Err())
	}
	return v.check(value)
}

// ValidateBytes validates raw YAML configuration. Unknown fields are errors.
func (v *Validator) ValidateBytes(filename string, data []byte) error {
	file, err := yaml.Extract(filename, data)
	if err != nil {
		return ValidationErrors{{Field: filename, Message: err.Error()}}
	}

	value := v.ctx.BuildFile(file)
	if value.Err() != nil {
		return ValidationErrors{{Field: filename, Message: value.Err().Error()}}
	}
	return v.check(value)
}

// ValidateFile validates a configuration file at the given path.
func (v *Validator) ValidateFile(path string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	data, err := os.ReadFile(expanded)
	if errors.Is(err, fs.ErrNotExist) {
		return oerrors.NewNotFoundError(
			"config file does not exist",
			expanded,
			"Create one with: coursekit config init",
		)
	}
	if err != nil {
		return oerrors.NewIOError("reading config file", expanded, err)
	}

	return v.ValidateBytes(expanded, data)
}

func (v *Validator) check(value cue.Value) error {
	unified := v.schema.Unify(value)
	err := unified.Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}

	var errs ValidationErrors
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		field := strings.Join(e.Path(), ".")
		if field == "" {
			field = "config"
		}
		errs = append(errs, ValidationError{
			Field:   field,
			Message: fmt.Sprintf(format, args...),
		})
	}
	return errs
}
