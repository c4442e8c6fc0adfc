package scaffold

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/dslectures/coursekit/internal/errors"
)

// filesystems returns the filesystems every populator test runs against.
func filesystems(t *testing.T) map[string]func() (afero.Fs, string) {
	t.Helper()
	return map[string]func() (afero.Fs, string){
		"memory": func() (afero.Fs, string) { return afero.NewMemMapFs(), "/unit" },
		"os":     func() (afero.Fs, string) { return afero.NewOsFs(), t.TempDir() },
	}
}

func TestPopulator_CreatesFiles(t *testing.T) {
	for name, mk := range filesystems(t) {
		t.Run(name, func(t *testing.T) {
			fsys, root := mk()
			require.NoError(t, fsys.MkdirAll(filepath.Join(root, "notebooks"), 0o755))

			files := []File{
				{Path: filepath.Join(root, "README.md"), Content: []byte("# Intro\n")},
				{Path: filepath.Join(root, "notebooks", "1.0-starter.ipynb"), Content: []byte("{}")},
				{Path: filepath.Join(root, "notebooks", ".gitkeep")},
			}

			outcomes := NewPopulator(fsys).Write(files)
			require.Len(t, outcomes, 3)
			for i, o := range outcomes {
				assert.Equal(t, files[i].Path, o.Path)
				assert.Equal(t, StatusCreated, o.Status)
				assert.NoError(t, o.Err)
			}

			assert.Equal(t, map[string]string{
				"README.md":                   "# Intro\n",
				"notebooks/1.0-starter.ipynb": "{}",
				"notebooks/.gitkeep":          "",
			}, snapshot(t, fsys, root))
			assert.Empty(t, tempFiles(t, fsys, root))
		})
	}
}

func TestPopulator_NeverOverwrites(t *testing.T) {
	for name, mk := range filesystems(t) {
		t.Run(name, func(t *testing.T) {
			fsys, root := mk()
			require.NoError(t, fsys.MkdirAll(filepath.Join(root, "dir-in-the-way"), 0o755))
			edited := filepath.Join(root, "features.py")
			require.NoError(t, afero.WriteFile(fsys, edited, []byte("my edits"), 0o644))

			outcomes := NewPopulator(fsys).Write([]File{
				{Path: edited, Content: []byte("template")},
				{Path: filepath.Join(root, "dir-in-the-way"), Content: []byte("template")},
			})

			require.Len(t, outcomes, 2)
			assert.Equal(t, StatusSkipped, outcomes[0].Status)
			assert.Equal(t, StatusSkipped, outcomes[1].Status)

			data, err := afero.ReadFile(fsys, edited)
			require.NoError(t, err)
			assert.Equal(t, "my edits", string(data))

			ok, err := afero.DirExists(fsys, filepath.Join(root, "dir-in-the-way"))
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestPopulator_MissingParentFailsOnlyThatEntry(t *testing.T) {
	for name, mk := range filesystems(t) {
		t.Run(name, func(t *testing.T) {
			fsys, root := mk()
			require.NoError(t, fsys.MkdirAll(root, 0o755))

			missing := filepath.Join(root, "no-such-dir", "train.py")
			outcomes := NewPopulator(fsys).Write([]File{
				{Path: missing, Content: []byte("x")},
				{Path: filepath.Join(root, "README.md"), Content: []byte("y")},
			})

			require.Len(t, outcomes, 2)
			assert.Equal(t, StatusFailed, outcomes[0].Status)
			require.Error(t, outcomes[0].Err)
			assert.True(t, errors.Is(outcomes[0].Err, oerrors.ErrIO))
			assert.Contains(t, outcomes[0].Err.Error(), missing)
			assert.Equal(t, StatusCreated, outcomes[1].Status)

			exists, err := afero.Exists(fsys, filepath.Join(root, "no-such-dir"))
			require.NoError(t, err)
			assert.False(t, exists, "populator must not create parent directories")
		})
	}
}

func TestPopulator_FileMode(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "dataset.py")

	outcomes := NewPopulator(afero.NewOsFs()).Write([]File{{Path: target, Content: []byte("x")}})
	require.Equal(t, StatusCreated, outcomes[0].Status)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, fileMode, info.Mode().Perm())
}

func TestPopulator_CommitLosesRace(t *testing.T) {
	for name, mk := range filesystems(t) {
		t.Run(name, func(t *testing.T) {
			fsys, root := mk()
			require.NoError(t, fsys.MkdirAll(root, 0o755))
			p := &fsPopulator{fs: fsys}
			target := filepath.Join(root, "train.py")

			tmp, err := p.writeTemp(root, "train.py", []byte("ours"))
			require.NoError(t, err)
			t.Cleanup(func() { _ = fsys.Remove(tmp) })

			// another run wins between our existence check and the commit
			require.NoError(t, afero.WriteFile(fsys, target, []byte("theirs"), 0o644))

			created, err := p.commit(tmp, target)
			require.NoError(t, err)
			assert.False(t, created)

			data, err := afero.ReadFile(fsys, target)
			require.NoError(t, err)
			assert.Equal(t, "theirs", string(data))
		})
	}
}

// staleStatFs reports hidden as missing, like a Stat that ran just before
// another run created it.
type staleStatFs struct {
	afero.Fs
	hidden string
}

func (s *staleStatFs) Stat(name string) (os.FileInfo, error) {
	if name == s.hidden {
		return nil, &os.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return s.Fs.Stat(name)
}

func TestPopulator_WithoutHardLinksNeverReplaces(t *testing.T) {
	backends := map[string]func() afero.Fs{
		"memory":    afero.NewMemMapFs,
		"base path": func() afero.Fs { return afero.NewBasePathFs(afero.NewOsFs(), t.TempDir()) },
	}

	for name, mk := range backends {
		t.Run(name, func(t *testing.T) {
			base := mk()
			require.NoError(t, base.MkdirAll("/unit", 0o755))
			target := filepath.Join("/unit", "train.py")
			require.NoError(t, afero.WriteFile(base, target, []byte("theirs"), 0o644))

			fsys := &staleStatFs{Fs: base, hidden: target}
			outcomes := NewPopulator(fsys).Write([]File{{Path: target, Content: []byte("ours")}})
			require.Len(t, outcomes, 1)
			assert.Equal(t, StatusSkipped, outcomes[0].Status)
			assert.NoError(t, outcomes[0].Err)

			data, err := afero.ReadFile(base, target)
			require.NoError(t, err)
			assert.Equal(t, "theirs", string(data))

			names, err := afero.ReadDir(base, "/unit")
			require.NoError(t, err)
			require.Len(t, names, 1, "temp file must be cleaned up")
			assert.Equal(t, "train.py", names[0].Name())
		})
	}
}

func TestPopulator_WithoutHardLinksCreates(t *testing.T) {
	fsys := afero.NewBasePathFs(afero.NewOsFs(), t.TempDir())
	require.NoError(t, fsys.MkdirAll("/unit", 0o755))
	target := filepath.Join("/unit", "dataset.py")

	outcomes := NewPopulator(fsys).Write([]File{{Path: target, Content: []byte("import pandas\n")}})
	require.Equal(t, StatusCreated, outcomes[0].Status)

	data, err := afero.ReadFile(fsys, target)
	require.NoError(t, err)
	assert.Equal(t, "import pandas\n", string(data))

	info, err := fsys.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, fileMode, info.Mode().Perm())
}

func TestPopulator_ParentIsFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/unit/modeling", []byte("x"), 0o644))

	outcomes := NewPopulator(fsys).Write([]File{{Path: "/unit/modeling/train.py", Content: []byte("y")}})
	require.Len(t, outcomes, 1)
	assert.Equal(t, StatusFailed, outcomes[0].Status)
	assert.True(t, errors.Is(outcomes[0].Err, oerrors.ErrIO))
}
