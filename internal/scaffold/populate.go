package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/dslectures/coursekit/internal/errors"
)

// fileMode is the permission of every written template file.
const fileMode fs.FileMode = 0o644

// Populator writes files without ever replacing existing ones.
type Populator interface {
	// Write attempts every file and returns one outcome per file, in order.
	Write(files []File) []Outcome
}

type fsPopulator struct {
	fs afero.Fs
}

// NewPopulator returns a Populator backed by fsys.
func NewPopulator(fsys afero.Fs) Populator {
	return &fsPopulator{fs: fsys}
}

func (p *fsPopulator) Write(files []File) []Outcome {
	outcomes := make([]Outcome, 0, len(files))
	for _, f := range files {
		outcomes = append(outcomes, p.write(f))
	}
	return outcomes
}

func (p *fsPopulator) write(f File) Outcome {
	if _, err := p.fs.Stat(f.Path); err == nil {
		return Outcome{Path: f.Path, Status: StatusSkipped}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return failed(f.Path, "checking file", err)
	}

	dir := filepath.Dir(f.Path)
	info, err := p.fs.Stat(dir)
	if err != nil {
		return failed(f.Path, "checking parent directory", err)
	}
	if !info.IsDir() {
		return failed(f.Path, "checking parent directory", fmt.Errorf("%s is not a directory", dir))
	}

	tmpName, err := p.writeTemp(dir, filepath.Base(f.Path), f.Content)
	if err != nil {
		return failed(f.Path, "writing file", err)
	}
	defer func() { _ = p.fs.Remove(tmpName) }()

	created, err := p.commit(tmpName, f.Path)
	if err != nil {
		return failed(f.Path, "writing file", err)
	}
	if !created {
		return Outcome{Path: f.Path, Status: StatusSkipped}
	}
	return Outcome{Path: f.Path, Status: StatusCreated}
}

// writeTemp writes content to a hidden temp file next to the target.
func (p *fsPopulator) writeTemp(dir, base string, content []byte) (string, error) {
	tmp, err := afero.TempFile(p.fs, dir, "."+base+".tmp-*")
	if err != nil {
		return "", err
	}
	name := tmp.Name()

	_, err = tmp.Write(content)
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = p.fs.Chmod(name, fileMode)
	}
	if err != nil {
		_ = p.fs.Remove(name)
		return "", err
	}
	return name, nil
}

// commit moves a fully written temp file to target unless target exists.
// It reports false when target appeared in the meantime. Without hard links
// an empty target is briefly visible before the rename lands.
func (p *fsPopulator) commit(tmp, target string) (bool, error) {
	if _, ok := p.fs.(*afero.OsFs); ok {
		// link(2) refuses to replace an existing target.
		err := os.Link(tmp, target)
		if err == nil {
			return true, nil
		}
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		// Filesystems without hard links fall through to claim and rename.
	}

	// O_EXCL lets exactly one run claim target; only the claimant renames
	// over its own empty placeholder.
	claim, err := p.fs.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileMode)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := claim.Close(); err != nil {
		_ = p.fs.Remove(target)
		return false, err
	}
	if err := p.fs.Rename(tmp, target); err != nil {
		_ = p.fs.Remove(target)
		return false, err
	}
	return true, nil
}

func failed(path, action string, err error) Outcome {
	return Outcome{
		Path:   path,
		Status: StatusFailed,
		Err:    oerrors.NewIOError(action, path, err),
	}
}
