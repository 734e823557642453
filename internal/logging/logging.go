package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New creates a pre-configured logger entry for a component. The status
// line path runs inside a shell prompt, so output is suppressed entirely
// unless verbose mode or CLAUDE_STATUSBAR_DEBUG is set.
func New(component string, verbose bool) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	switch {
	case verbose || os.Getenv("CLAUDE_STATUSBAR_DEBUG") != "":
		logger.SetLevel(logrus.DebugLevel)
	default:
		logger.SetLevel(logrus.WarnLevel)
	}

	return logger.WithField("component", component)
}

// Discard returns a logger that drops everything; used by tests.
func Discard() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}
