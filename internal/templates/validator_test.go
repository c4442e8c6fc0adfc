package templates

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/dslectures/coursekit/internal/errors"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"leading digit gets prefix", "03-neural-networks", "lec_03_neural_networks"},
		{"space and case", "Intro ML", "intro_ml"},
		{"already a slug", "uebung01", "uebung01"},
		{"runs collapse to one underscore", "a -- b", "a_b"},
		{"underscores count as separators", "a__b", "a_b"},
		{"leading and trailing junk stripped", "  (Deep) Learning! ", "deep_learning"},
		{"non ascii letters are separators", "Übung 2", "bung_2"},
		{"single digit", "7", "lec_7"},
		{"dots and slashes", "v1.2/final", "v1_2_final"},
		{"prefixed slug is stable", "lec_03_neural_networks", "lec_03_neural_networks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, IsIdentifier(got), "%q is not an identifier", got)
		})
	}
}

func TestNormalize_InvalidName(t *testing.T) {
	for _, input := range []string{"", "!!!", "___", " - ", "ÄÖÜ"} {
		t.Run(input, func(t *testing.T) {
			_, err := Normalize(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrInvalidName))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, input := range []string{"03-neural-networks", "Intro ML", "x", "Hello, World 2024", "9lives"} {
		once, err := Normalize(input)
		require.NoError(t, err)
		twice, err := Normalize(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "input %q", input)
	}
}

func TestIsIdentifier(t *testing.T) {
	assert.True(t, IsIdentifier("lec_01"))
	assert.True(t, IsIdentifier("_private"))
	assert.False(t, IsIdentifier(""))
	assert.False(t, IsIdentifier("01_lec"))
	assert.False(t, IsIdentifier("Upper"))
	assert.False(t, IsIdentifier("with-dash"))
}

func TestValidateUnitName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain", "03-neural-networks", false},
		{"spaces are kept verbatim", "Intro ML", false},
		{"unicode is kept verbatim", "Übung 2", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"dot", ".", true},
		{"dot dot", "..", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"nul", "a\x00b", true},
		{"invalid utf-8", "\xff\xfeab", true},
		{"truncated rune", "ab\xc3", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUnitName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, oerrors.ErrInvalidName))
				return
			}
			assert.NoError(t, err)
		})
	}
}
