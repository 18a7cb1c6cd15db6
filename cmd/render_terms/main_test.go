package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "terms.html")

	require.NoError(t, run("dark", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	html := string(data)
	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, `data-display-mode="dark"`)
	assert.Contains(t, html, "10. Updates to Terms")
	assert.Contains(t, html, "11. Contact Us")
}

func TestRunUnknownMode(t *testing.T) {
	err := run("sepia", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown display mode "sepia"`)
}

func TestRunBadOutput(t *testing.T) {
	err := run("light", filepath.Join(t.TempDir(), "missing", "terms.html"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error creating")
}
