package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/claude-tools/claude-statusbar/internal/config"
	"github.com/claude-tools/claude-statusbar/internal/errors"
	"github.com/claude-tools/claude-statusbar/internal/sessions"
	"github.com/claude-tools/claude-statusbar/internal/statusbar"
	"github.com/claude-tools/claude-statusbar/internal/usage"
)

const version = "0.3.0"

var (
	cfgFile string
	noColor bool
	verbose bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "claude-statusbar",
		Short:   "Claude Code subscription status line",
		Version: version,
		Long: `Shows Claude Code subscription usage as a compact status line:

  🤖Op+T | 📊16% ⏱️2h30m | 📆13% ⏱️5d21h

  🤖Op+T   model (Opus) + extended thinking
  📊16%    session usage, ⏱️ time until session reset
  📆13%    weekly usage, ⏱️ time until weekly reset

Usage data is cached in ~/.claude-usage.json and refreshed by
'claude-statusbar update', typically from cron every 5-10 minutes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runStatus,
	}

	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to config file (default "+config.Path()+")")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newUpdateCmd())
	root.AddCommand(newJSONCmd())

	return root
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	cached := usage.NewCache(cfg.CachePath).Read()
	activity := sessions.Detect(cfg.ProjectsDir)

	renderer := statusbar.Renderer{
		Color:        !noColor && isatty.IsTerminal(os.Stdout.Fd()),
		ClockFormat:  cfg.ClockFormat,
		ResetDisplay: cfg.ResetDisplay,
	}

	model := sessions.ShortModel(activity.Model, activity.Thinking)
	fmt.Println(renderer.Render(model, cached, time.Now()))
	return nil
}

// reportError prints a concise one-line message per error code, plus the
// bounded raw-text preview for parse failures.
func reportError(err error) {
	switch errors.GetCode(err) {
	case errors.ErrCodeClaudeNotFound:
		fmt.Fprintln(os.Stderr, "Error: claude CLI not found. Install Claude Code first.")

	case errors.ErrCodePTYUnsupported:
		fmt.Fprintln(os.Stderr, "Error: this platform has no pseudo-terminal support; cannot scrape usage.")

	case errors.ErrCodeParseEmpty:
		fmt.Fprintln(os.Stderr, "Error: could not parse usage data")
		if se, ok := err.(*errors.StatusError); ok {
			if previewText, ok := se.Details["preview"].(string); ok && previewText != "" {
				fmt.Fprintf(os.Stderr, "Raw output (preview):\n%s\n", previewText)
			}
		}

	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
