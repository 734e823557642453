package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/claude-tools/claude-statusbar/internal/config"
	"github.com/claude-tools/claude-statusbar/internal/sessions"
	"github.com/claude-tools/claude-statusbar/internal/usage"
)

// jsonStatus is the machine-readable dump consumed by bar integrations
// (waybar, polybar) that prefer structured data over the rendered line.
type jsonStatus struct {
	Model            string     `json:"model"`
	ModelShort       string     `json:"model_short"`
	HasThinking      bool       `json:"has_thinking"`
	SessionPercent   *int       `json:"session_percent"`
	SessionReset     *time.Time `json:"session_reset"`
	SessionResetHour *int       `json:"session_reset_hour"`
	WeekPercent      *int       `json:"week_percent"`
	WeekReset        *time.Time `json:"week_reset"`
	LastUpdated      *time.Time `json:"last_updated"`
}

func newJSONCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "json",
		Short: "Print usage status as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			cached := usage.NewCache(cfg.CachePath).Read()
			activity := sessions.Detect(cfg.ProjectsDir)

			out := jsonStatus{
				Model:            activity.Model,
				ModelShort:       sessions.ShortModel(activity.Model, activity.Thinking),
				HasThinking:      activity.Thinking,
				SessionPercent:   cached.SessionPercent,
				SessionReset:     cached.SessionReset,
				SessionResetHour: cached.SessionResetHour,
				WeekPercent:      cached.WeekPercent,
				WeekReset:        cached.WeekReset,
				LastUpdated:      cached.LastUpdated,
			}

			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}
}
