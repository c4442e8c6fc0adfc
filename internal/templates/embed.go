package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	oerrors "github.com/dslectures/coursekit/internal/errors"
)

// The all: prefix is required so __init__.py and __slug__ are embedded.
//
//go:embed all:lecture all:exercise
var catalogFS embed.FS

// KeepFile is the marker written into otherwise empty directories.
const KeepFile = ".gitkeep"

// Catalog maps unit kinds to their template trees.
type Catalog struct {
	fsys fs.FS
}

// NewCatalog returns the catalog backed by the embedded template trees.
func NewCatalog() *Catalog {
	return &Catalog{fsys: catalogFS}
}

// NewCatalogFS returns a catalog reading template trees from fsys. The tree
// for a kind lives in a top-level directory named after the kind.
func NewCatalogFS(fsys fs.FS) *Catalog {
	return &Catalog{fsys: fsys}
}

// Entries returns the rendered template entries for a unit, in a stable order:
// the kind's own templates, then its directory markers, then nested units.
func (c *Catalog) Entries(kind Kind, name, slug string) ([]Entry, error) {
	info, err := Describe(kind)
	if err != nil {
		return nil, err
	}

	if err := c.checkSlug(kind, info, name, slug); err != nil {
		return nil, err
	}

	entries, err := c.render(kind, Data{Name: name, Slug: slug})
	if err != nil {
		return nil, err
	}

	for _, d := range info.Dirs {
		if !d.Keep {
			continue
		}
		entries = append(entries, Entry{
			Path:   append(strings.Split(d.Path, "/"), KeepFile),
			Marker: true,
		})
	}

	if kind == Lecture {
		nested, err := c.starterExercise()
		if err != nil {
			return nil, err
		}
		entries = append(entries, nested...)
	}

	return entries, nil
}

// Plan returns the entries of a unit together with the directory set that
// has to exist before they can be written.
func (c *Catalog) Plan(kind Kind, name, slug string) (*Plan, error) {
	info, err := Describe(kind)
	if err != nil {
		return nil, err
	}

	entries, err := c.Entries(kind, name, slug)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var dirs []string
	add := func(dir string) {
		if dir == "." || dir == "" || seen[dir] {
			return
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}
	for _, e := range entries {
		add(path.Dir(e.RelPath()))
	}
	for _, d := range info.Dirs {
		add(d.Path)
	}
	sort.Strings(dirs)

	return &Plan{
		Kind:        kind,
		Entries:     entries,
		Dirs:        info.Dirs,
		Directories: dirs,
	}, nil
}

// checkSlug rejects a slug that would name the same top-level directory as
// one of the kind's own templates or fixed directories. Only trees with a
// top-level SlugSegment can collide.
func (c *Catalog) checkSlug(kind Kind, info KindInfo, name, slug string) error {
	files, err := c.ListTemplateFiles(kind)
	if err != nil {
		return err
	}

	slugged := false
	taken := make(map[string]bool)
	for _, f := range files {
		top, _, _ := strings.Cut(f, "/")
		if top == SlugSegment {
			slugged = true
			continue
		}
		taken[top] = true
	}
	for _, d := range info.Dirs {
		top, _, _ := strings.Cut(d.Path, "/")
		taken[top] = true
	}

	if slugged && taken[slug] {
		return oerrors.NewInvalidNameError(name,
			fmt.Sprintf("maps to slug %q, which is already the %s/ directory of every %s", slug, slug, kind))
	}
	return nil
}

// starterExercise renders the exercise tree below exercises/<StarterExercise>.
func (c *Catalog) starterExercise() ([]Entry, error) {
	slug, err := Normalize(StarterExercise)
	if err != nil {
		return nil, err
	}

	nested, err := c.render(Exercise, Data{Name: StarterExercise, Slug: slug})
	if err != nil {
		return nil, err
	}

	prefix := []string{"exercises", StarterExercise}
	for i := range nested {
		nested[i].Path = append(append([]string{}, prefix...), nested[i].Path...)
	}
	return nested, nil
}

// render walks the tree of a kind and renders every file in it.
func (c *Catalog) render(kind Kind, data Data) ([]Entry, error) {
	root := string(kind)
	renderer := NewRenderer(data)

	var entries []Entry
	err := fs.WalkDir(c.fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := fs.ReadFile(c.fsys, p)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", p, err)
		}

		rel := strings.TrimPrefix(p, root+"/")
		entries = append(entries, Entry{
			Path:    renderer.RenderPath(rel),
			Content: renderer.RenderString(string(content)),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s templates: %w", kind, err)
	}

	return entries, nil
}

// ListTemplateFiles returns the unrendered relative paths of a kind's tree.
func (c *Catalog) ListTemplateFiles(kind Kind) ([]string, error) {
	if _, err := Describe(kind); err != nil {
		return nil, err
	}

	root := string(kind)
	var files []string
	err := fs.WalkDir(c.fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, strings.TrimPrefix(p, root+"/"))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s templates: %w", kind, err)
	}
	return files, nil
}
