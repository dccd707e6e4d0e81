package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, files map[string]string) string {
	root := t.TempDir()
	for name, content := range files {
		location := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(location), 0755))
		require.NoError(t, os.WriteFile(location, []byte(content), 0644))
	}
	return root
}

func TestDetector_Detect(t *testing.T) {
	var testCases = []struct {
		description string
		files       map[string]string
		location    string
		kind        string
		name        string
		relative    string
		origin      string
	}{
		{
			description: "go module",
			files: map[string]string{
				"go.mod":           "module github.com/acme/shapes\n\ngo 1.22\n",
				"pkg/draw/draw.go": "package draw\n",
			},
			location: "pkg/draw",
			kind:     KindGo,
			name:     "github.com/acme/shapes",
			relative: "pkg/draw",
		},
		{
			description: "file location",
			files: map[string]string{
				"go.mod":           "module github.com/acme/shapes\n",
				"pkg/draw/draw.go": "package draw\n",
			},
			location: "pkg/draw/draw.go",
			kind:     KindGo,
			name:     "github.com/acme/shapes",
			relative: "pkg/draw/draw.go",
		},
		{
			description: "javascript package",
			files: map[string]string{
				"package.json":  `{"name": "@acme/shapes", "version": "1.0.0"}`,
				"src/index.ts":  "export {}\n",
				".git/config":   "[core]\n\tbare = false\n[remote \"origin\"]\n\turl = git@github.com:acme/shapes.git\n",
				".git/HEAD":     "ref: refs/heads/main\n",
				"src/.keep":     "",
				"src/types.ts":  "",
				"src/shapes.ts": "",
			},
			location: "src",
			kind:     KindJavaScript,
			name:     "@acme/shapes",
			relative: "src",
			origin:   "git@github.com:acme/shapes.git",
		},
		{
			description: "git only",
			files: map[string]string{
				".git/config": "[remote \"upstream\"]\n\turl = https://example.com/up.git\n",
				"docs/a.md":   "",
			},
			location: "docs",
			kind:     KindGit,
			relative: "docs",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			root := writeFiles(t, testCase.files)
			project, err := New().Detect(context.Background(), filepath.Join(root, testCase.location))
			require.NoError(t, err)
			assert.Equal(t, root, project.Root)
			assert.Equal(t, testCase.kind, project.Kind)
			if testCase.name == "" {
				testCase.name = filepath.Base(root)
			}
			assert.Equal(t, testCase.name, project.Name)
			assert.Equal(t, testCase.relative, project.RelativePath)
			assert.Equal(t, testCase.origin, project.Origin)
			if testCase.kind == KindGo {
				require.NotNil(t, project.Module)
				assert.Equal(t, testCase.name, project.Module.Mod.Path)
			}
		})
	}
}

func TestDetector_Missing(t *testing.T) {
	_, err := New().Detect(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestDetector_CustomMarkers(t *testing.T) {
	root := writeFiles(t, map[string]string{"docgraph.yaml": "strict: true\n", "src/a.go": "package a\n"})
	project, err := New(&Marker{Name: "docgraph.yaml", Kind: "config"}).Detect(context.Background(), filepath.Join(root, "src"))
	require.NoError(t, err)
	assert.Equal(t, root, project.Root)
	assert.Equal(t, "config", project.Kind)
	assert.Equal(t, "src", project.RelativePath)
}
