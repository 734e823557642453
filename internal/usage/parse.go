package usage

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// The claude CLI has no structured usage API; everything below matches its
// human-readable output. Two layouts are recognized, tried in order:
//
//  1. compact: "📊16% ⏱️2h30m | 📆13% ⏱️5d21h" (percentages only)
//  2. verbose: the full /usage report with "Current session" and
//     "Current week" sections, progress bars and "Resets <time>" phrases
//
// Adding a layout means adding a matcher to parseLayouts, nothing else.
var (
	compactSessionPattern = regexp.MustCompile(`📊\s*(\d{1,3})%`)
	compactWeekPattern    = regexp.MustCompile(`📆\s*(\d{1,3})%`)

	// Verbose section patterns tolerate progress-bar glyphs and embedded
	// newlines between the label and the percentage.
	sessionPercentPattern = regexp.MustCompile(`(?is)current session\s+[█░▓\s]*(\d{1,3})%\s*used`)
	sessionResetPattern   = regexp.MustCompile(`(?is)current session.*?resets?\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)
	weekPercentPattern    = regexp.MustCompile(`(?is)current week \(all models\)\s+[█░▓\s]*(\d{1,3})%\s*used`)
	weekResetPattern      = regexp.MustCompile(`(?is)current week.*?resets?\s+([a-z]{3,9})\s+(\d{1,2}),?\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)
)

var monthMap = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

type layoutMatcher func(text string, now time.Time) (Snapshot, bool)

// parseLayouts are tried in priority order; the first one that yields any
// field wins the whole call.
var parseLayouts = []layoutMatcher{
	parseCompact,
	parseVerbose,
}

// Parse extracts usage fields from ANSI-stripped capture text. The result
// may be partial or entirely empty; callers decide whether that is
// actionable. now anchors the day/year rollover of reset times.
func Parse(text string, now time.Time) Snapshot {
	for _, match := range parseLayouts {
		if snap, ok := match(text, now); ok {
			return snap
		}
	}
	return Snapshot{}
}

// parseCompact matches the symbol-tagged single-line summary. It carries
// percentages only, never reset times.
func parseCompact(text string, _ time.Time) (Snapshot, bool) {
	var snap Snapshot
	if m := compactSessionPattern.FindStringSubmatch(text); m != nil {
		if pct, err := strconv.Atoi(m[1]); err == nil && pct <= 100 {
			snap.SessionPercent = intPtr(pct)
		}
	}
	if m := compactWeekPattern.FindStringSubmatch(text); m != nil {
		if pct, err := strconv.Atoi(m[1]); err == nil && pct <= 100 {
			snap.WeekPercent = intPtr(pct)
		}
	}
	return snap, !snap.Empty()
}

// parseVerbose matches the full /usage report. The session and week
// sections are parsed independently; a malformed field is skipped without
// affecting the others. Each section is assumed to appear once. If the
// terminal redraws a section into scrollback, first match wins and may be
// stale.
func parseVerbose(text string, now time.Time) (Snapshot, bool) {
	var snap Snapshot

	if m := sessionPercentPattern.FindStringSubmatch(text); m != nil {
		if pct, err := strconv.Atoi(m[1]); err == nil && pct <= 100 {
			snap.SessionPercent = intPtr(pct)
		}
	}

	if m := sessionResetPattern.FindStringSubmatch(text); m != nil {
		if hour, minute, ok := clockTokens(m[1], m[2], m[3]); ok {
			target := nextDailyOccurrence(now, hour, minute)
			snap.SessionReset = timePtr(target)
			snap.SessionResetHour = intPtr(hour)
		}
	}

	if m := weekPercentPattern.FindStringSubmatch(text); m != nil {
		if pct, err := strconv.Atoi(m[1]); err == nil && pct <= 100 {
			snap.WeekPercent = intPtr(pct)
		}
	}

	if m := weekResetPattern.FindStringSubmatch(text); m != nil {
		month, monthOK := monthMap[strings.ToLower(m[1])[:3]]
		day, dayErr := strconv.Atoi(m[2])
		hour, minute, clockOK := clockTokens(m[3], m[4], m[5])
		if monthOK && dayErr == nil && day >= 1 && day <= 31 && clockOK {
			target := nextYearlyOccurrence(now, month, day, hour, minute)
			snap.WeekReset = timePtr(target)
		}
	}

	return snap, !snap.Empty()
}

// clockTokens converts regex captures (hour, optional minutes, optional
// am/pm suffix) into a 24-hour hour/minute pair. Without a suffix the hour
// is taken as already being 24-hour.
func clockTokens(hourStr, minuteStr, ampm string) (hour, minute int, ok bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, 0, false
	}
	if minuteStr != "" {
		if minute, err = strconv.Atoi(minuteStr); err != nil || minute > 59 {
			return 0, 0, false
		}
	}

	switch strings.ToLower(ampm) {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	if hour > 23 {
		return 0, 0, false
	}
	return hour, minute, true
}

// nextDailyOccurrence resolves a bare time of day to the next absolute
// instant at or after now: today if still ahead, otherwise tomorrow.
// Calendar arithmetic, not 24h addition, so a DST boundary keeps the
// wall-clock hour.
func nextDailyOccurrence(now time.Time, hour, minute int) time.Time {
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !target.After(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target
}

// nextYearlyOccurrence resolves a month/day + time of day against the
// current year, rolling to next year when the result is already past.
func nextYearlyOccurrence(now time.Time, month time.Month, day, hour, minute int) time.Time {
	target := time.Date(now.Year(), month, day, hour, minute, 0, 0, now.Location())
	if target.Before(now) {
		target = time.Date(now.Year()+1, month, day, hour, minute, 0, 0, now.Location())
	}
	return target
}

// CaptureComplete is the completion predicate for the session driver: the
// capture is done once the compact marker pair is present, or once both
// verbose sections have emitted their "% used" line.
func CaptureComplete(text string) bool {
	if compactSessionPattern.MatchString(text) && compactWeekPattern.MatchString(text) {
		return true
	}
	return sessionPercentPattern.MatchString(text) && weekPercentPattern.MatchString(text)
}
