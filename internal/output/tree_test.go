package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree(t *testing.T) {
	got := RenderFileTree("uebung02", map[string]string{
		"notebooks/1.0-starter.ipynb": "starter notebook",
		"uebung02/__init__.py":        "",
		"uebung02/modeling/train.py":  "training entry point",
	})

	want := `uebung02/
├── notebooks/
│   └── 1.0-starter.ipynb     starter notebook
└── uebung02/
    ├── modeling/
    │   └── train.py          training entry point
    └── __init__.py
`
	assert.Equal(t, want, got)
}

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Empty(t, RenderFileTree("x", nil))
}

func TestRenderStatusTree(t *testing.T) {
	got := RenderStatusTree("x", map[string]string{
		"README.md":      StatusSkipped,
		"data/.gitkeep":  StatusCreated,
		"models/weights": StatusFailed,
	})

	assert.Contains(t, got, "README.md")
	assert.Contains(t, got, StatusSkipped)
	assert.Contains(t, got, StatusCreated)
	assert.Contains(t, got, StatusFailed)
}
