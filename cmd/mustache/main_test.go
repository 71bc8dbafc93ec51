package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRun_RendersTemplateAgainstYAMLData(t *testing.T) {
	dir := t.TempDir()
	tmplPath := writeTempFile(t, dir, "greeting.mustache", "Hello, {{name}}!")
	dataPath := writeTempFile(t, dir, "data.yaml", "name: World\n")

	err := run(tmplPath, dataPath, "")
	require.NoError(t, err)
}

func TestRun_MissingTemplateFile(t *testing.T) {
	dir := t.TempDir()
	dataPath := writeTempFile(t, dir, "data.yaml", "name: World\n")

	err := run(filepath.Join(dir, "nope.mustache"), dataPath, "")
	require.Error(t, err)
}

func TestRun_PartialsDir(t *testing.T) {
	dir := t.TempDir()
	partialsDir := filepath.Join(dir, "partials")
	require.NoError(t, os.Mkdir(partialsDir, 0o755))
	writeTempFile(t, partialsDir, "footer.mustache", "bye {{name}}")

	tmplPath := writeTempFile(t, dir, "main.mustache", "hi {{>footer}}")
	dataPath := writeTempFile(t, dir, "data.yaml", "name: Ada\n")

	err := run(tmplPath, dataPath, partialsDir)
	require.NoError(t, err)
}

func TestRun_InvalidTemplate(t *testing.T) {
	dir := t.TempDir()
	tmplPath := writeTempFile(t, dir, "bad.mustache", "{{#a}}")
	dataPath := writeTempFile(t, dir, "data.yaml", "a: true\n")

	err := run(tmplPath, dataPath, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Unclosed section "a"`)
}
