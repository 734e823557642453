package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/claude-tools/claude-statusbar/internal/errors"
)

// ClockFormat selects between 12-hour and 24-hour clock rendering.
type ClockFormat string

const (
	Clock12 ClockFormat = "12h"
	Clock24 ClockFormat = "24h"
)

// ResetDisplay selects what the status line shows next to the timer glyph.
type ResetDisplay string

const (
	// ResetRemaining shows the time left until reset, e.g. "2h30m".
	ResetRemaining ResetDisplay = "remaining"
	// ResetClock shows the absolute reset time, e.g. "5am" or "01/jan 17h".
	ResetClock ResetDisplay = "clock"
)

// Duration wraps time.Duration so it can be written as "20s" in YAML.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return errors.ConfigInvalid("bad duration " + raw)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Config holds all configuration options.
type Config struct {
	// CachePath is the JSON usage cache location. Default: ~/.claude-usage.json
	CachePath string `yaml:"cache_path,omitempty"`

	// ProjectsDir is scanned for conversation logs to detect the active
	// model. Default: ~/.claude/projects
	ProjectsDir string `yaml:"projects_dir,omitempty"`

	// ClaudeCommand overrides claude binary discovery when set.
	ClaudeCommand string `yaml:"claude_command,omitempty"`

	// ClockFormat is "12h" or "24h". Default: 24h.
	ClockFormat ClockFormat `yaml:"clock_format,omitempty"`

	// ResetDisplay is "remaining" or "clock". Default: remaining.
	ResetDisplay ResetDisplay `yaml:"reset_display,omitempty"`

	// ScrapeTimeout bounds one whole scrape of the claude session.
	ScrapeTimeout Duration `yaml:"scrape_timeout,omitempty"`

	// SettleDelay is the pause after launching claude and after sending
	// the usage command, letting it finish rendering before polling.
	SettleDelay Duration `yaml:"settle_delay,omitempty"`

	// PollInterval is the per-iteration read deadline of the capture loop.
	PollInterval Duration `yaml:"poll_interval,omitempty"`

	// NotifyThreshold posts a desktop notification when session or week
	// usage reaches this percentage after an update. 0 disables it.
	NotifyThreshold int `yaml:"notify_threshold,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		CachePath:     filepath.Join(home, ".claude-usage.json"),
		ProjectsDir:   filepath.Join(home, ".claude", "projects"),
		ClockFormat:   Clock24,
		ResetDisplay:  ResetRemaining,
		ScrapeTimeout: Duration(20 * time.Second),
		SettleDelay:   Duration(2 * time.Second),
		PollInterval:  Duration(500 * time.Millisecond),
	}
}

// configPath returns the path to the config file.
func configPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "claude-statusbar", "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "claude-statusbar", "config.yaml")
}

// Load loads config from path, falling back to ~/.config/claude-statusbar
// when path is empty and to defaults when no file exists.
func Load(path string) (*Config, error) {
	if path == "" {
		path = configPath()
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.ConfigInvalid(err.Error())
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigInvalid(err.Error())
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	switch c.ClockFormat {
	case Clock12, Clock24:
	default:
		return errors.ConfigInvalid("clock_format must be \"12h\" or \"24h\"")
	}
	switch c.ResetDisplay {
	case ResetRemaining, ResetClock:
	default:
		return errors.ConfigInvalid("reset_display must be \"remaining\" or \"clock\"")
	}
	if c.NotifyThreshold < 0 || c.NotifyThreshold > 100 {
		return errors.ConfigInvalid("notify_threshold must be between 0 and 100")
	}
	return nil
}

// Path returns the config file path (for help text).
func Path() string {
	return configPath()
}
