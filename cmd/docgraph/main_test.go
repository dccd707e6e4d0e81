package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/docgraph/plugin/visibility"
	"github.com/viant/docgraph/reflection"
	"github.com/viant/docgraph/render"
)

func TestRun(t *testing.T) {
	input, err := filepath.Abs(filepath.Join("testdata", "shapes.yaml"))
	require.NoError(t, err)

	var testCases = []struct {
		description string
		args        []string
		code        int
		stdout      []string
		manifest    bool
	}{
		{
			description: "version",
			args:        []string{"version"},
			stdout:      []string{"docgraph " + version},
		},
		{
			description: "missing documentation",
			args:        []string{"build", "--input", input},
			code:        1,
			stdout:      []string{"Missing documentation:", "  helper (Function) at foo/baz:7", "@internal"},
		},
		{
			description: "non strict",
			args:        []string{"build", "--input", input, "--strict=false", "--log-format", "json"},
			stdout:      []string{"shapes: 4 documents written to"},
			manifest:    true,
		},
		{
			description: "invalid log level",
			args:        []string{"build", "--input", input, "--log-level", "loud"},
			code:        1,
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			output := filepath.Join(t.TempDir(), "manifest.yaml")
			args := testCase.args
			if testCase.args[0] == "build" {
				args = append(args, "--output", output)
			}
			stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
			code := run(args, stdout, stderr)
			assert.Equal(t, testCase.code, code, stderr.String())
			for _, fragment := range testCase.stdout {
				assert.Contains(t, stdout.String(), fragment)
			}
			_, statErr := os.Stat(output)
			assert.Equal(t, testCase.manifest, statErr == nil)
			if !testCase.manifest {
				return
			}
			manifest, err := render.LoadManifest(context.Background(), afs.New(), output)
			require.NoError(t, err)
			assert.Equal(t, "shapes", manifest.Project)
			assert.Len(t, manifest.Pages, 4)
		})
	}
}

func TestRun_Config(t *testing.T) {
	input, err := filepath.Abs(filepath.Join("testdata", "shapes.yaml"))
	require.NoError(t, err)
	dir := t.TempDir()
	output := filepath.Join(dir, "out", "manifest.yaml")
	configURL := filepath.Join(dir, "docgraph.toml")
	content := "input = \"" + filepath.ToSlash(input) + "\"\noutput = \"" + filepath.ToSlash(output) + "\"\nstrict = false\n"
	require.NoError(t, os.WriteFile(configURL, []byte(content), 0644))

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code := run([]string{"build", "--config", configURL}, stdout, stderr)
	assert.Equal(t, 0, code, stderr.String())
	_, err = os.Stat(output)
	assert.NoError(t, err)
}

func TestReporter(t *testing.T) {
	output := &bytes.Buffer{}
	reports := &reporter{w: output}
	first := visibility.NewMissingDocumentationError([]*visibility.Missing{{Name: "helper", Kind: reflection.KindFunction, Location: "foo/baz:7"}})
	same := visibility.NewMissingDocumentationError([]*visibility.Missing{{Name: "helper", Kind: reflection.KindFunction, Location: "foo/baz:7"}})
	other := visibility.NewMissingDocumentationError([]*visibility.Missing{{Name: "draw", Kind: reflection.KindMethod, Location: "foo/bar:9"}})

	assert.True(t, reports.report(first))
	assert.False(t, reports.report(same))
	assert.True(t, reports.report(other))
	reports.reset()
	assert.True(t, reports.report(other))
	assert.Equal(t, 3, strings.Count(output.String(), "Missing documentation:"))
}
