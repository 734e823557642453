package ptydriver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindClaudeOverride(t *testing.T) {
	argv, err := FindClaude("/opt/claude/bin/claude")
	require.NoError(t, err)
	assert.Equal(t, []string{"/opt/claude/bin/claude"}, argv)
}

func TestIsRegularFile(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, isRegularFile(dir), "directories are not candidates")
	assert.False(t, isRegularFile(filepath.Join(dir, "missing")))

	path := filepath.Join(dir, "claude")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o644))
	// Presence is enough; a bad mode surfaces at exec time instead.
	assert.True(t, isRegularFile(path))
}
