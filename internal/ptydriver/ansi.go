package ptydriver

import (
	"regexp"
	"strings"
)

var (
	// CSI sequences plus single-character escapes (cursor moves, colors,
	// alternate screen, ...).
	csiPattern = regexp.MustCompile(`\x1B(?:[@-Z\\-_]|\[[0-?]*[ -/]*[@-~])`)

	// OSC sequences (window title etc.), terminated by BEL or ST.
	oscPattern = regexp.MustCompile(`\x1B\][^\x07\x1B]*(?:\x07|\x1B\\)`)
)

// Decode converts raw terminal bytes into clean text: undecodable bytes
// are replaced rather than failing, and terminal escape sequences are
// removed so the parser sees only visible characters.
func Decode(raw []byte) string {
	text := strings.ToValidUTF8(string(raw), "�")
	text = oscPattern.ReplaceAllString(text, "")
	return csiPattern.ReplaceAllString(text, "")
}
