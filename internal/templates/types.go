// Package templates provides the unit template catalog for coursekit.
package templates

import "path"

// Kind is the kind of course unit being scaffolded.
type Kind string

const (
	// Lecture is a top-level lecture unit under the lectures root.
	Lecture Kind = "lecture"

	// Exercise is an exercise unit nested under a lecture's exercises/ directory.
	Exercise Kind = "exercise"
)

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// Entry is a single file to be written, relative to the unit root.
type Entry struct {
	// Path is the ordered list of path segments below the unit root.
	Path []string

	// Content is the rendered file content.
	Content string

	// Marker is set for empty files that only exist to keep a directory.
	Marker bool
}

// RelPath returns the slash-separated relative path of the entry.
func (e Entry) RelPath() string {
	return path.Join(e.Path...)
}

// Dir is a directory that must exist even when no template lives in it.
type Dir struct {
	// Path is the slash-separated path below the unit root.
	Path string

	// Keep requests a .gitkeep marker so the directory survives version control.
	Keep bool
}

// Data holds the literal values substituted into templates.
type Data struct {
	// Name is the unit name exactly as the caller supplied it.
	Name string

	// Slug is the identifier derived from Name.
	Slug string
}

// Plan is everything needed to materialize one unit.
type Plan struct {
	// Kind is the unit kind the plan was built for.
	Kind Kind

	// Entries are the files to write, in a stable order.
	Entries []Entry

	// Dirs are the fixed directories of the kind.
	Dirs []Dir

	// Directories is the sorted set of slash-separated directories to create:
	// the parents of all entries plus the fixed directories.
	Directories []string
}
