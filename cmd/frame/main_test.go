package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vangoframework/frame/internal/shell"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ENVIRONMENT", "development")

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func TestRenderCommandRoot(t *testing.T) {
	t.Setenv("HOST_DOCUMENT", "")

	out, err := executeCommand(t, "render", "/")
	require.NoError(t, err)

	assert.Contains(t, out, `<div id="root">`)
	assert.Contains(t, out, "404 - Page Not Found")
	assert.Contains(t, out, `<a class="frame-link" href="/">Home</a>`)
}

func TestRenderCommandDefaultsToRoot(t *testing.T) {
	t.Setenv("HOST_DOCUMENT", "")

	out, err := executeCommand(t, "render")
	require.NoError(t, err)
	assert.Contains(t, out, "<header")
}

func TestRenderCommandHostDocument(t *testing.T) {
	dir := t.TempDir()
	host := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(host, []byte(`<html><head><title>custom</title></head><body><main id="root"></main></body></html>`), 0o644))
	t.Setenv("HOST_DOCUMENT", host)

	out, err := executeCommand(t, "render", "/somewhere")
	require.NoError(t, err)
	assert.Contains(t, out, "<title>custom</title>")
	assert.Contains(t, out, `<main id="root"><div class="frame-container`)
}

func TestRenderCommandMissingMountPoint(t *testing.T) {
	dir := t.TempDir()
	host := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(host, []byte(`<html><body><div id="app"></div></body></html>`), 0o644))
	t.Setenv("HOST_DOCUMENT", host)

	out, err := executeCommand(t, "render", "/")
	require.Error(t, err)
	assert.ErrorIs(t, err, shell.ErrMountPointMissing)
	assert.Empty(t, out)
}

func TestRenderCommandUnreadableHostDocument(t *testing.T) {
	t.Setenv("HOST_DOCUMENT", filepath.Join(t.TempDir(), "missing.html"))

	_, err := executeCommand(t, "render", "/")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read host document")
}

func TestRoutesCommand(t *testing.T) {
	t.Setenv("HOST_DOCUMENT", "")

	out, err := executeCommand(t, "routes")
	require.NoError(t, err)
	assert.Equal(t, "/\n/*\n", out)
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}
