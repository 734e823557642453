// Package statusbar assembles the one-line usage summary shown in the
// shell prompt or editor status line.
package statusbar

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/claude-tools/claude-statusbar/internal/config"
	"github.com/claude-tools/claude-statusbar/internal/usage"
)

// Percent bands for coloring, matching the usual traffic-light scheme.
const (
	warnPercent = 50
	critPercent = 80
)

var (
	modelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	critStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// Renderer produces the status line from cached usage data.
type Renderer struct {
	// Color toggles ANSI styling; the caller disables it for non-TTY
	// output or --no-color.
	Color bool

	// ClockFormat applies when ResetDisplay is "clock".
	ClockFormat config.ClockFormat

	// ResetDisplay picks remaining-duration or absolute-clock rendering
	// for the two reset fields.
	ResetDisplay config.ResetDisplay
}

// Render builds the status line: model segment, session segment, week
// segment. Unknown values render as "?" rather than erroring; the status
// line must always print something.
func (r Renderer) Render(model string, cached usage.Cached, now time.Time) string {
	sessionReset := r.resetString(cached.SessionReset, now, false)
	weekReset := r.resetString(cached.WeekReset, now, true)

	if !r.Color {
		return fmt.Sprintf("🤖%s | 📊%s ⏱️%s | 📆%s ⏱️%s",
			model,
			percentString(cached.SessionPercent), sessionReset,
			percentString(cached.WeekPercent), weekReset)
	}

	return fmt.Sprintf("%s | %s ⏱️%s | %s ⏱️%s",
		modelStyle.Render("🤖"+model),
		percentStyle(cached.SessionPercent).Render("📊"+percentString(cached.SessionPercent)),
		sessionReset,
		percentStyle(cached.WeekPercent).Render("📆"+percentString(cached.WeekPercent)),
		weekReset)
}

func (r Renderer) resetString(target *time.Time, now time.Time, week bool) string {
	if r.ResetDisplay == config.ResetClock {
		if week {
			return usage.FormatWeekClock(target, r.ClockFormat)
		}
		return usage.FormatClock(target, r.ClockFormat)
	}
	return usage.TimeUntil(target, now)
}

func percentString(pct *int) string {
	if pct == nil {
		return usage.Placeholder + "%"
	}
	return strconv.Itoa(*pct) + "%"
}

func percentStyle(pct *int) lipgloss.Style {
	switch {
	case pct == nil:
		return dimStyle
	case *pct >= critPercent:
		return critStyle
	case *pct >= warnPercent:
		return warnStyle
	default:
		return okStyle
	}
}
