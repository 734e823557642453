// Package updater wires the scrape pipeline together: drive the claude
// session, parse the capture, merge the cache, alert. It is what the
// background job (cron or a systemd timer) runs every few minutes.
package updater

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/claude-tools/claude-statusbar/internal/config"
	"github.com/claude-tools/claude-statusbar/internal/errors"
	"github.com/claude-tools/claude-statusbar/internal/notify"
	"github.com/claude-tools/claude-statusbar/internal/ptydriver"
	"github.com/claude-tools/claude-statusbar/internal/usage"
)

// rawPreviewLimit bounds how much captured text a parse-failure report
// may include; the full capture can be thousands of bytes of redraw noise.
const rawPreviewLimit = 1000

// Updater runs one scrape-and-merge cycle.
type Updater struct {
	Config *config.Config
	Logger *logrus.Entry

	// Spawner overrides the real pty spawner in tests.
	Spawner ptydriver.Spawner

	// Now overrides the clock in tests.
	Now func() time.Time

	// Out receives progress lines; defaults to stdout.
	Out io.Writer
}

// Run performs one update. A timeout with a usable partial capture is
// still merged; an empty parse leaves the cache untouched and returns
// a PARSE_EMPTY error carrying a bounded preview of the raw text.
func (u *Updater) Run() error {
	now := u.now()
	out := u.out()
	fmt.Fprintf(out, "[%s] Fetching usage data...\n", now.Format("15:04:05"))

	argv, err := ptydriver.FindClaude(u.Config.ClaudeCommand)
	if err != nil {
		return err
	}

	text, err := ptydriver.Run(ptydriver.Options{
		Argv:         argv,
		Complete:     usage.CaptureComplete,
		Timeout:      time.Duration(u.Config.ScrapeTimeout),
		SettleDelay:  time.Duration(u.Config.SettleDelay),
		PollInterval: time.Duration(u.Config.PollInterval),
		Spawner:      u.Spawner,
		Logger:       u.Logger,
	})
	if err != nil {
		if !errors.Is(err, errors.ErrCodeScrapeTimeout) {
			return err
		}
		// A timed-out capture with a session section but no week section
		// is still worth keeping.
		u.Logger.WithError(err).Warn("scrape timed out, parsing partial capture")
	}

	snap := usage.Parse(text, u.now())
	if snap.Empty() {
		return errors.ParseEmpty(preview(text))
	}

	cache := usage.NewCache(u.Config.CachePath)
	merged, mergeErr := cache.Merge(snap, u.now())
	if mergeErr != nil {
		return mergeErr
	}

	dump, _ := json.MarshalIndent(merged, "", "  ")
	fmt.Fprintf(out, "Updated %s:\n%s\n", cache.Path(), dump)

	notify.UsageAlert(u.Config.NotifyThreshold, snap, u.Logger)
	return nil
}

func (u *Updater) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

func (u *Updater) out() io.Writer {
	if u.Out != nil {
		return u.Out
	}
	return os.Stdout
}

func preview(text string) string {
	if len(text) <= rawPreviewLimit {
		return text
	}
	return text[:rawPreviewLimit] + "..."
}
