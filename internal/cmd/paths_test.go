package cmd

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dslectures/coursekit/internal/testutil"
)

func TestPaths_Text(t *testing.T) {
	course := testutil.Course(t)

	out, err := run(t, "paths", "--root", course, "--config", configPath(t))
	require.NoError(t, err)
	assert.Contains(t, out, course)
	assert.Contains(t, out, filepath.Join(course, "lectures"))
	assert.Contains(t, out, filepath.Join(course, "common"))
	assert.Contains(t, out, filepath.Join(course, "docs"))
}

func TestPaths_LectureJSON(t *testing.T) {
	course := testutil.Course(t)

	out, err := run(t, "paths", "01-intro-ml", "--root", course, "--config", configPath(t), "-o", "json")
	require.NoError(t, err)

	var report pathsReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.NotNil(t, report.Project)
	require.NotNil(t, report.Lecture)
	assert.Equal(t, course, report.Project.ProjectRoot)

	lecture := filepath.Join(course, "lectures", "01-intro-ml")
	assert.Equal(t, lecture, report.Lecture.Root)
	assert.Equal(t, filepath.Join(lecture, "data", "raw"), report.Lecture.Raw)
	assert.Equal(t, filepath.Join(lecture, "reports"), report.Lecture.Reports)
}

func TestPaths_Errors(t *testing.T) {
	course := testutil.Course(t)

	_, err := run(t, "paths", "a/b", "--root", course, "--config", configPath(t))
	requireExitCode(t, err, ExitValidationError)

	cfg := testutil.WriteFile(t, t.TempDir(), "config.yaml", "docsDir: ../../docs\n")
	_, err = run(t, "paths", "--root", course, "--config", cfg)
	requireExitCode(t, err, ExitValidationError)

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	_, err = run(t, "paths", "--root", dir, "--config", configPath(t))
	requireExitCode(t, err, ExitNotFound)
}
