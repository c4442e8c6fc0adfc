package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type sample struct {
	Root  string   `json:"root" yaml:"root"`
	Files []string `json:"files" yaml:"files"`
}

func TestWriteStructured_YAML(t *testing.T) {
	var buf bytes.Buffer
	in := sample{Root: "/course/lectures/x", Files: []string{"README.md"}}

	require.NoError(t, WriteStructured(&buf, FormatYAML, in))
	assert.Equal(t, "root: /course/lectures/x\nfiles:\n  - README.md\n", buf.String())

	var out sample
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, in, out)
}

func TestWriteStructured_JSON(t *testing.T) {
	var buf bytes.Buffer
	in := sample{Root: "/r", Files: []string{"a", "b"}}

	require.NoError(t, WriteStructured(&buf, FormatJSON, in))
	assert.Contains(t, buf.String(), "\n  \"root\": \"/r\"")

	var out sample
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, in, out)
}

func TestWriteStructured_Text(t *testing.T) {
	err := WriteStructured(&bytes.Buffer{}, FormatText, sample{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text")
}
