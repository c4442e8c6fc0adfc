package templates

import (
	"fmt"

	oerrors "github.com/dslectures/coursekit/internal/errors"
)

// StarterExercise is the exercise created inside every new lecture.
const StarterExercise = "uebung01"

// KindInfo describes a unit kind for help output.
type KindInfo struct {
	// Kind is the unit kind.
	Kind Kind

	// Description explains what the kind produces.
	Description string

	// Dirs are the fixed directories of the kind.
	Dirs []Dir
}

// kinds is the internal registry of unit kinds.
var kinds = map[Kind]KindInfo{
	Lecture: {
		Kind:        Lecture,
		Description: "Lecture with data folders, notebooks, shared lecture_code and a starter exercise",
		Dirs: []Dir{
			{Path: "data/raw", Keep: true},
			{Path: "data/interim", Keep: true},
			{Path: "data/processed", Keep: true},
			{Path: "models"},
			{Path: "reports/figures"},
		},
	},
	Exercise: {
		Kind:        Exercise,
		Description: "Exercise with a starter notebook and a code package named after the exercise",
	},
}

// Kinds returns all unit kinds in display order.
func Kinds() []Kind {
	return []Kind{Lecture, Exercise}
}

// Describe returns the registry entry for a kind.
func Describe(kind Kind) (KindInfo, error) {
	info, ok := kinds[kind]
	if !ok {
		return KindInfo{}, unknownKind(string(kind))
	}
	return info, nil
}

func unknownKind(s string) error {
	return oerrors.NewValidationError(
		fmt.Sprintf("unknown unit kind %q", s),
		"", "kind",
		"Valid kinds: lecture, exercise",
	)
}
