package usage

import (
	"fmt"
	"strings"
	"time"

	"github.com/claude-tools/claude-statusbar/internal/config"
)

// Placeholder is rendered wherever a value is missing or unparsable.
const Placeholder = "?"

// TimeUntil renders the coarse remaining duration from now until target:
// "3d4h", "2h05m" or "45m", truncated to whole minutes. A target at or
// before now renders as "now"; a missing target renders the placeholder.
func TimeUntil(target *time.Time, now time.Time) string {
	if target == nil {
		return Placeholder
	}
	if !target.After(now) {
		return "now"
	}

	totalMinutes := int(target.Sub(now).Minutes())
	totalHours := totalMinutes / 60
	days := totalHours / 24

	switch {
	case days > 0:
		return fmt.Sprintf("%dd%dh", days, totalHours%24)
	case totalHours > 0:
		return fmt.Sprintf("%dh%02dm", totalHours, totalMinutes%60)
	default:
		return fmt.Sprintf("%dm", totalMinutes)
	}
}

// FormatClock renders the time-of-day of target in the given convention:
// 24-hour "17h" / "17:30", 12-hour "5pm" / "5:30pm". The minute field is
// omitted when zero.
func FormatClock(target *time.Time, format config.ClockFormat) string {
	if target == nil {
		return Placeholder
	}
	return clockString(target.Hour(), target.Minute(), format)
}

// FormatWeekClock renders target as a short date plus time of day, e.g.
// "01/jan 5am" or "01/jan 17h".
func FormatWeekClock(target *time.Time, format config.ClockFormat) string {
	if target == nil {
		return Placeholder
	}
	date := fmt.Sprintf("%02d/%s", target.Day(), strings.ToLower(target.Month().String()[:3]))
	return date + " " + clockString(target.Hour(), target.Minute(), format)
}

func clockString(hour, minute int, format config.ClockFormat) string {
	if format == config.Clock24 {
		if minute == 0 {
			return fmt.Sprintf("%dh", hour)
		}
		return fmt.Sprintf("%d:%02d", hour, minute)
	}

	suffix := "am"
	if hour >= 12 {
		suffix = "pm"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	if minute == 0 {
		return fmt.Sprintf("%d%s", display, suffix)
	}
	return fmt.Sprintf("%d:%02d%s", display, minute, suffix)
}
