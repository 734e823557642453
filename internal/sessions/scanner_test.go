package sessions

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLog(t *testing.T, dir, name string, lines []string, age time.Duration) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	var content string
	for _, line := range lines {
		content += line + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	mtime := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestDetectModelFromNewestLog(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "proj-a/old.jsonl", []string{
		`{"message":{"model":"claude-haiku-4"}}`,
	}, time.Hour)
	writeLog(t, dir, "proj-b/new.jsonl", []string{
		`{"type":"user","message":{"content":"hello"}}`,
		`{"message":{"model":"claude-sonnet-4"}}`,
		`{"message":{"model":"claude-opus-4"}}`,
	}, time.Minute)

	activity := Detect(dir)
	// Latest model in the most recent log wins.
	assert.Equal(t, "claude-opus-4", activity.Model)
	assert.False(t, activity.Thinking)
}

func TestDetectThinkingBlocks(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "proj/s.jsonl", []string{
		`{"message":{"model":"claude-opus-4","content":[{"type":"text","text":"hi"},{"type":"thinking","thinking":"..."}]}}`,
	}, time.Minute)

	activity := Detect(dir)
	assert.Equal(t, "claude-opus-4", activity.Model)
	assert.True(t, activity.Thinking)
}

func TestDetectSkipsSubagentLogs(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "proj/agent-123.jsonl", []string{
		`{"message":{"model":"claude-haiku-4"}}`,
	}, time.Minute)
	// The marker can sit anywhere in the name, not just at the front.
	writeLog(t, dir, "proj/task-agent-456.jsonl", []string{
		`{"message":{"model":"claude-sonnet-4"}}`,
	}, 2*time.Minute)
	writeLog(t, dir, "proj/main.jsonl", []string{
		`{"message":{"model":"claude-opus-4"}}`,
	}, time.Hour)

	activity := Detect(dir)
	assert.Equal(t, "claude-opus-4", activity.Model)
}

func TestDetectTolerations(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		activity := Detect(filepath.Join(t.TempDir(), "nope"))
		assert.Equal(t, Activity{}, activity)
	})

	t.Run("malformed lines skipped", func(t *testing.T) {
		dir := t.TempDir()
		writeLog(t, dir, "proj/s.jsonl", []string{
			`not json at all`,
			`{"message":{"model":"claude-sonnet-4"}}`,
		}, time.Minute)
		assert.Equal(t, "claude-sonnet-4", Detect(dir).Model)
	})
}

func TestShortModel(t *testing.T) {
	tests := []struct {
		model    string
		thinking bool
		want     string
	}{
		{"claude-opus-4-20250514", false, "Op"},
		{"claude-opus-4-20250514", true, "Op+T"},
		{"claude-sonnet-4-5", false, "So"},
		{"claude-haiku-4", false, "Ha"},
		{"something-else", false, "?"},
		{"", false, "?"},
		{"", true, "?"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ShortModel(tt.model, tt.thinking))
		})
	}
}
