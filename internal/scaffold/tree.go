package scaffold

import (
	"fmt"

	"github.com/spf13/afero"

	oerrors "github.com/dslectures/coursekit/internal/errors"
)

// TreeBuilder creates directories.
type TreeBuilder interface {
	// Ensure creates every directory and its missing ancestors. Existing
	// directories are fine. Directories created before a failure are kept.
	Ensure(dirs []string) error
}

type fsTreeBuilder struct {
	fs afero.Fs
}

// NewTreeBuilder returns a TreeBuilder backed by fsys.
func NewTreeBuilder(fsys afero.Fs) TreeBuilder {
	return &fsTreeBuilder{fs: fsys}
}

func (b *fsTreeBuilder) Ensure(dirs []string) error {
	for _, dir := range dirs {
		if err := b.fs.MkdirAll(dir, 0o755); err != nil {
			return oerrors.NewIOError("creating directory", dir, err)
		}

		// Some filesystems report success when a file already sits at dir.
		info, err := b.fs.Stat(dir)
		if err != nil {
			return oerrors.NewIOError("creating directory", dir, err)
		}
		if !info.IsDir() {
			return oerrors.NewIOError("creating directory", dir, fmt.Errorf("%s exists and is not a directory", dir))
		}
	}
	return nil
}
