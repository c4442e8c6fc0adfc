package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	oerrors "github.com/dslectures/coursekit/internal/errors"
)

// Layout names the marker file and top-level directories of a course project.
type Layout struct {
	Marker      string
	LecturesDir string
	CommonDir   string
	DocsDir     string
}

// DefaultLayout returns the layout of DefaultConfig.
func DefaultLayout() Layout {
	return DefaultConfig().Layout()
}

// ProjectPaths are the discovered top-level paths of a course project.
type ProjectPaths struct {
	ProjectRoot string `json:"projectRoot" yaml:"projectRoot"`
	Lectures    string `json:"lectures" yaml:"lectures"`
	Common      string `json:"common" yaml:"common"`
	Docs        string `json:"docs" yaml:"docs"`
}

// LecturePaths are the conventional paths inside a single lecture.
type LecturePaths struct {
	Root      string `json:"root" yaml:"root"`
	Data      string `json:"data" yaml:"data"`
	Raw       string `json:"raw" yaml:"raw"`
	Interim   string `json:"interim" yaml:"interim"`
	Processed string `json:"processed" yaml:"processed"`
	Notebooks string `json:"notebooks" yaml:"notebooks"`
	Models    string `json:"models" yaml:"models"`
	Reports   string `json:"reports" yaml:"reports"`
	Exercises string `json:"exercises" yaml:"exercises"`
}

// DiscoverPaths walks from start up through its ancestors and returns the
// paths of the first directory containing layout.Marker.
func DiscoverPaths(start string, layout Layout) (*ProjectPaths, error) {
	if layout.Marker == "" {
		layout = DefaultLayout()
	}

	if start == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		start = cwd
	}

	abs, err := filepath.Abs(ExpandTilde(start))
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", start, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	dir := abs
	for {
		_, err := os.Stat(filepath.Join(dir, layout.Marker))
		if err == nil {
			return newProjectPaths(dir, layout), nil
		}
		if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, fs.ErrPermission) {
			return nil, oerrors.NewIOError("looking for "+layout.Marker, dir, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil, oerrors.NewNotFoundError(
		fmt.Sprintf("no %s found in %s or any parent directory", layout.Marker, abs),
		abs,
		fmt.Sprintf("Run coursekit inside a course project, or pass --root. The project root is marked by %s.", layout.Marker),
	)
}

func newProjectPaths(root string, layout Layout) *ProjectPaths {
	return &ProjectPaths{
		ProjectRoot: root,
		Lectures:    filepath.Join(root, layout.LecturesDir),
		Common:      filepath.Join(root, layout.CommonDir),
		Docs:        filepath.Join(root, layout.DocsDir),
	}
}

// ForLecture returns the conventional paths of lecture name.
func (p *ProjectPaths) ForLecture(name string) LecturePaths {
	root := filepath.Join(p.Lectures, name)
	data := filepath.Join(root, "data")
	return LecturePaths{
		Root:      root,
		Data:      data,
		Raw:       filepath.Join(data, "raw"),
		Interim:   filepath.Join(data, "interim"),
		Processed: filepath.Join(data, "processed"),
		Notebooks: filepath.Join(root, "notebooks"),
		Models:    filepath.Join(root, "models"),
		Reports:   filepath.Join(root, "reports"),
		Exercises: filepath.Join(root, "exercises"),
	}
}
