package ptydriver

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/claude-tools/claude-statusbar/internal/errors"
)

// FindClaude locates the claude binary: override first, then PATH, then
// the usual install locations (npm global prefix, ~/.local/bin, nvm node
// versions), finally falling back to npx. The returned slice is the argv
// prefix to launch.
func FindClaude(override string) ([]string, error) {
	if override != "" {
		return []string{override}, nil
	}

	if path, err := exec.LookPath("claude"); err == nil {
		return []string{path}, nil
	}

	home, _ := os.UserHomeDir()
	candidates := []string{
		filepath.Join(home, ".npm-global", "bin", "claude"),
		filepath.Join(home, ".local", "bin", "claude"),
		"/usr/local/bin/claude",
		"/usr/bin/claude",
	}
	for _, candidate := range candidates {
		if isRegularFile(candidate) {
			return []string{candidate}, nil
		}
	}

	// nvm keeps one bin dir per node version.
	nvmVersions := filepath.Join(home, ".nvm", "versions", "node")
	if entries, err := os.ReadDir(nvmVersions); err == nil {
		for _, entry := range entries {
			candidate := filepath.Join(nvmVersions, entry.Name(), "bin", "claude")
			if isRegularFile(candidate) {
				return []string{candidate}, nil
			}
		}
	}

	if npx, err := exec.LookPath("npx"); err == nil {
		return []string{npx, "claude"}, nil
	}

	return nil, errors.ClaudeNotFound()
}

// isRegularFile checks presence only; mode bits are left to the OS to
// reject at exec time.
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
