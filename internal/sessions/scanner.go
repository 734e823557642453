// Package sessions detects the active model and thinking mode from recent
// Claude Code conversation logs.
package sessions

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// maxRecentFiles caps how many conversation logs are inspected per call;
// the status line must stay fast even with a large project history.
const maxRecentFiles = 30

// Activity is what the conversation logs reveal about the current session.
type Activity struct {
	Model    string
	Thinking bool
}

// jsonLine is the subset of a conversation log line we care about.
type jsonLine struct {
	Message struct {
		Model   string          `json:"model"`
		Content json.RawMessage `json:"content"`
	} `json:"message"`
}

type contentBlock struct {
	Type string `json:"type"`
}

// Detect scans baseDir for the most recently modified conversation logs
// and extracts the latest model plus whether extended thinking appeared.
// Subagent logs (agent- prefix) are skipped. Any I/O problem just yields
// an empty Activity; the status line renders a placeholder.
func Detect(baseDir string) Activity {
	files := recentLogFiles(baseDir)

	var activity Activity
	for _, path := range files {
		model, thinking := scanFile(path)
		if thinking {
			activity.Thinking = true
		}
		if model != "" {
			activity.Model = model
			break
		}
	}
	return activity
}

type logFile struct {
	path    string
	modTime time.Time
}

func recentLogFiles(baseDir string) []string {
	var files []logFile

	_ = filepath.WalkDir(baseDir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".jsonl") || strings.Contains(d.Name(), "agent-") {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		files = append(files, logFile{path: path, modTime: info.ModTime()})
		return nil
	})

	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime.After(files[j].modTime)
	})
	if len(files) > maxRecentFiles {
		files = files[:maxRecentFiles]
	}

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.path
	}
	return paths
}

func scanFile(path string) (model string, thinking bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	for scanner.Scan() {
		var line jsonLine
		if json.Unmarshal(scanner.Bytes(), &line) != nil {
			continue
		}
		if line.Message.Model != "" {
			model = line.Message.Model
		}
		if !thinking && hasThinkingBlock(line.Message.Content) {
			thinking = true
		}
	}
	return model, thinking
}

func hasThinkingBlock(content json.RawMessage) bool {
	if len(content) == 0 {
		return false
	}
	var blocks []contentBlock
	if json.Unmarshal(content, &blocks) != nil {
		// Plain-string content (user messages) never carries thinking.
		return false
	}
	for _, block := range blocks {
		if block.Type == "thinking" {
			return true
		}
	}
	return false
}

// ShortModel renders a model identifier as the compact status-line form:
// Op, So or Ha, with "+T" appended when extended thinking is active.
func ShortModel(model string, thinking bool) string {
	if model == "" {
		return "?"
	}

	var name string
	lower := strings.ToLower(model)
	switch {
	case strings.Contains(lower, "opus"):
		name = "Op"
	case strings.Contains(lower, "sonnet"):
		name = "So"
	case strings.Contains(lower, "haiku"):
		name = "Ha"
	default:
		name = "?"
	}

	if thinking {
		return name + "+T"
	}
	return name
}
