package templates

import (
	"regexp"
	"strings"
	"unicode/utf8"

	oerrors "github.com/dslectures/coursekit/internal/errors"
)

// DigitPrefix is prepended to slugs that would otherwise start with a digit.
const DigitPrefix = "lec_"

var (
	// nonAlnumRun matches every maximal run of characters outside [0-9a-zA-Z].
	nonAlnumRun = regexp.MustCompile(`[^0-9a-zA-Z]+`)

	identifierRegex = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)
)

// Normalize converts a free-form unit name into an identifier slug.
//
//	Normalize("Intro ML")           // "intro_ml"
//	Normalize("03-neural-networks") // "lec_03_neural_networks"
//	Normalize("!!!")                // ErrInvalidName
func Normalize(name string) (string, error) {
	if name == "" {
		return "", oerrors.NewInvalidNameError(name, "must not be empty")
	}

	slug := nonAlnumRun.ReplaceAllString(name, "_")
	slug = strings.ToLower(strings.Trim(slug, "_"))
	if slug == "" {
		return "", oerrors.NewInvalidNameError(name, "contains no letters or digits")
	}

	if slug[0] >= '0' && slug[0] <= '9' {
		slug = DigitPrefix + slug
	}
	return slug, nil
}

// IsIdentifier reports whether s matches [a-z_][a-z0-9_]*.
func IsIdentifier(s string) bool {
	return identifierRegex.MatchString(s)
}

// ValidateUnitName checks that a unit name can be used verbatim as a single
// directory name below its parent.
func ValidateUnitName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return oerrors.NewInvalidNameError(name, "must not be empty")
	case name == "." || name == "..":
		return oerrors.NewInvalidNameError(name, "is not a directory name")
	case strings.ContainsAny(name, `/\`):
		return oerrors.NewInvalidNameError(name, "must not contain path separators")
	case strings.ContainsRune(name, 0):
		return oerrors.NewInvalidNameError(name, "must not contain NUL bytes")
	case !utf8.ValidString(name):
		return oerrors.NewInvalidNameError(name, "is not valid UTF-8")
	}
	return nil
}
