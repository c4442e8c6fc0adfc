package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputFormatValid(t *testing.T) {
	tests := []struct {
		format OutputFormat
		valid  bool
	}{
		{FormatText, true},
		{FormatYAML, true},
		{FormatJSON, true},
		{OutputFormat("table"), false},
		{OutputFormat(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.format.Valid())
		})
	}
}

func TestOutputFormatString(t *testing.T) {
	assert.Equal(t, "text", FormatText.String())
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "json", FormatJSON.String())
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input string
		want  OutputFormat
		valid bool
	}{
		{"text", FormatText, true},
		{"TEXT", FormatText, true},
		{"yaml", FormatYAML, true},
		{"yml", FormatYAML, true},
		{"json", FormatJSON, true},
		{"JSON", FormatJSON, true},
		{"invalid", OutputFormat("invalid"), false},
		{"", OutputFormat(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, valid := ParseOutputFormat(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.valid, valid)
		})
	}
}

func TestValidFormats(t *testing.T) {
	assert.Equal(t, []string{"text", "yaml", "json"}, ValidFormats())
}
