package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// WriteStructured writes v to w as a YAML document or an indented JSON value.
// Text is not a structured format and is rejected.
func WriteStructured(w io.Writer, format OutputFormat, v any) error {
	switch format {
	case FormatYAML:
		return writeYAML(w, v)
	case FormatJSON:
		return writeJSON(w, v)
	default:
		return fmt.Errorf("format %s not supported for structured output", format)
	}
}

// writeYAML writes v as a single YAML document.
func writeYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	err := encoder.Encode(v)
	if closeErr := encoder.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return nil
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
