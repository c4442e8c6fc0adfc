// Package scaffold builds lecture and exercise trees on a filesystem.
package scaffold

import (
	"path/filepath"

	"github.com/dslectures/coursekit/internal/templates"
)

// Status is the outcome of writing a single file.
type Status string

const (
	// StatusCreated means the file did not exist and was written.
	StatusCreated Status = "created"

	// StatusSkipped means something already existed at the path and was left alone.
	StatusSkipped Status = "skipped"

	// StatusFailed means the file could not be written.
	StatusFailed Status = "failed"
)

// File is a file to be written at an absolute path.
type File struct {
	Path    string
	Content []byte
}

// Outcome records what happened to one file.
type Outcome struct {
	// Path is the absolute path of the file.
	Path string

	// Status is the write outcome.
	Status Status

	// Err is set when Status is StatusFailed.
	Err error
}

// Request describes a unit to scaffold.
type Request struct {
	// Kind selects the template set and layout.
	Kind templates.Kind

	// Root is the lectures root directory.
	Root string

	// Lecture is the parent lecture directory name (exercises only).
	Lecture string

	// Name is the unit name, used verbatim as directory name.
	Name string
}

// Result is returned by a scaffold run.
type Result struct {
	// Root is the absolute path of the unit root.
	Root string

	// Kind is the scaffolded unit kind.
	Kind templates.Kind

	// Name is the unit name as supplied.
	Name string

	// Slug is the identifier derived from Name.
	Slug string

	// Outcomes lists one outcome per template entry, in catalog order.
	Outcomes []Outcome
}

// Count returns the number of outcomes with the given status.
func (r *Result) Count(status Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Failed returns the failed outcomes.
func (r *Result) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Status == StatusFailed {
			failed = append(failed, o)
		}
	}
	return failed
}

// Rel returns the outcome path relative to the unit root, slash-separated.
func (r *Result) Rel(o Outcome) string {
	rel, err := filepath.Rel(r.Root, o.Path)
	if err != nil {
		return o.Path
	}
	return filepath.ToSlash(rel)
}
