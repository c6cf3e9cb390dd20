package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunYAMLFormatWritesVDF(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.yaml")
	out := filepath.Join(dir, "out.vdf")
	require.NoError(t, os.WriteFile(in, []byte("name: yaml cli test\naction:\n  - name: Default\n    layer:\n      - LS: \"(A)\"\n"), 0o644))

	err := run([]string{"--format", "yaml", "--input", in, "--output", out})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "controller_mappings")
}

func TestRunShorthandFormatWritesVDF(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.yaml")
	out := filepath.Join(dir, "out.vdf")
	doc := `
name: shorthand cli test
action:
  - name: Default
    layer:
      - name: base
        parent: ""
        entries:
          "BQ.n": "(A)"
`
	require.NoError(t, os.WriteFile(in, []byte(doc), 0o644))

	err := run([]string{"--format", "shorthand", "--input", in, "--output", out})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "controller_mappings")
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	err := run([]string{"--format", "bogus"})
	assert.Error(t, err)
}
