package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	oerrors "github.com/dslectures/coursekit/internal/errors"
	"github.com/dslectures/coursekit/internal/templates"
)

// Engine scaffolds units: it resolves the unit root, derives the slug, builds
// the directory tree and populates it from the template catalog.
type Engine struct {
	fs        afero.Fs
	logger    *log.Logger
	catalog   *templates.Catalog
	tree      TreeBuilder
	populator Populator
}

// Option configures an Engine.
type Option func(*Engine)

// WithFs sets the filesystem used for lookups, directories and files.
func WithFs(fsys afero.Fs) Option {
	return func(e *Engine) {
		e.fs = fsys
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithCatalog sets the template catalog.
func WithCatalog(catalog *templates.Catalog) Option {
	return func(e *Engine) {
		e.catalog = catalog
	}
}

// WithTreeBuilder replaces the directory builder.
func WithTreeBuilder(b TreeBuilder) Option {
	return func(e *Engine) {
		e.tree = b
	}
}

// WithPopulator replaces the file populator.
func WithPopulator(p Populator) Option {
	return func(e *Engine) {
		e.populator = p
	}
}

// New creates an engine. Without options it works on the OS filesystem with
// the embedded catalog and a discarding logger.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}

	if e.fs == nil {
		e.fs = afero.NewOsFs()
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	if e.catalog == nil {
		e.catalog = templates.NewCatalog()
	}
	if e.tree == nil {
		e.tree = NewTreeBuilder(e.fs)
	}
	if e.populator == nil {
		e.populator = NewPopulator(e.fs)
	}
	return e
}

// ScaffoldLecture scaffolds lecture name below the lectures root.
func (e *Engine) ScaffoldLecture(ctx context.Context, root, name string) (*Result, error) {
	return e.Scaffold(ctx, Request{Kind: templates.Lecture, Root: root, Name: name})
}

// ScaffoldExercise scaffolds exercise name inside an existing lecture.
func (e *Engine) ScaffoldExercise(ctx context.Context, root, lecture, name string) (*Result, error) {
	return e.Scaffold(ctx, Request{Kind: templates.Exercise, Root: root, Lecture: lecture, Name: name})
}

// Scaffold creates the unit described by req.
//
// Invalid names and a missing parent lecture are reported before anything is
// written. When some files fail to write, the result is returned together
// with an error matching ErrIO; files that already existed are skipped and
// never count as failures.
func (e *Engine) Scaffold(ctx context.Context, req Request) (*Result, error) {
	unitRoot, err := e.resolve(req)
	if err != nil {
		return nil, err
	}

	slug, err := templates.Normalize(req.Name)
	if err != nil {
		return nil, err
	}

	plan, err := e.catalog.Plan(req.Kind, req.Name, slug)
	if err != nil {
		return nil, fmt.Errorf("planning %s %q: %w", req.Kind, req.Name, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dirs := make([]string, 0, len(plan.Directories)+1)
	dirs = append(dirs, unitRoot)
	for _, d := range plan.Directories {
		dirs = append(dirs, filepath.Join(unitRoot, filepath.FromSlash(d)))
	}
	e.logger.Debug("creating directories", "root", unitRoot, "count", len(dirs))
	if err := e.tree.Ensure(dirs); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files := make([]File, 0, len(plan.Entries))
	for _, entry := range plan.Entries {
		files = append(files, File{
			Path:    filepath.Join(append([]string{unitRoot}, entry.Path...)...),
			Content: []byte(entry.Content),
		})
	}

	result := &Result{
		Root:     unitRoot,
		Kind:     req.Kind,
		Name:     req.Name,
		Slug:     slug,
		Outcomes: e.populator.Write(files),
	}
	for _, o := range result.Outcomes {
		e.logger.Debug(string(o.Status), "path", result.Rel(o))
	}

	if failed := result.Failed(); len(failed) > 0 {
		errs := make([]error, 0, len(failed))
		for _, o := range failed {
			errs = append(errs, o.Err)
		}
		return result, errors.Join(errs...)
	}

	e.logger.Info(fmt.Sprintf("scaffolded %s", req.Kind),
		"path", unitRoot,
		"created", result.Count(StatusCreated),
		"skipped", result.Count(StatusSkipped),
	)
	return result, nil
}

// resolve validates the request and returns the absolute unit root.
func (e *Engine) resolve(req Request) (string, error) {
	if _, err := templates.Describe(req.Kind); err != nil {
		return "", err
	}
	if err := templates.ValidateUnitName(req.Name); err != nil {
		return "", err
	}

	root, err := filepath.Abs(req.Root)
	if err != nil {
		return "", fmt.Errorf("resolving lectures root %s: %w", req.Root, err)
	}

	switch req.Kind {
	case templates.Exercise:
		if err := templates.ValidateUnitName(req.Lecture); err != nil {
			return "", err
		}
		lectureRoot := filepath.Join(root, req.Lecture)
		if err := e.requireDir(lectureRoot, req.Lecture); err != nil {
			return "", err
		}
		return filepath.Join(lectureRoot, "exercises", req.Name), nil
	default:
		return filepath.Join(root, req.Name), nil
	}
}

func (e *Engine) requireDir(dir, lecture string) error {
	info, err := e.fs.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return oerrors.NewNotFoundError(
			fmt.Sprintf("lecture %q does not exist", lecture),
			dir,
			fmt.Sprintf("Create it first with: coursekit new-lecture %q", lecture),
		)
	case err != nil:
		return oerrors.NewIOError("checking lecture", dir, err)
	case !info.IsDir():
		return oerrors.NewNotFoundError(
			fmt.Sprintf("lecture %q is not a directory", lecture),
			dir, "",
		)
	}
	return nil
}
