package main

import (
	"github.com/spf13/cobra"

	"github.com/claude-tools/claude-statusbar/internal/config"
	"github.com/claude-tools/claude-statusbar/internal/logging"
	"github.com/claude-tools/claude-statusbar/internal/updater"
)

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Fetch fresh usage data from claude (runs /usage via a pty)",
		Long: `Launches the claude CLI in a pseudo-terminal, runs /usage, scrapes
the report and merges the result into the usage cache. Meant to run
from cron or a systemd timer; runs must not overlap, the cache is
written without locking.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			u := &updater.Updater{
				Config: cfg,
				Logger: logging.New("updater", verbose),
			}
			return u.Run()
		},
	}
}
