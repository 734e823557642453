// Package usage parses the human-oriented /usage report emitted by the
// claude CLI and owns the on-disk usage cache and time rendering.
package usage

import "time"

// Snapshot holds the fields recovered from one capture of claude's usage
// output. Every field is optional: the compact layout only carries
// percentages, and a partial capture may carry only one section. Fields
// that were not found stay nil and never overwrite cached values.
type Snapshot struct {
	SessionPercent *int
	SessionReset   *time.Time
	// SessionResetHour mirrors SessionReset's hour for consumers of the
	// legacy session_reset_hour cache key.
	SessionResetHour *int
	WeekPercent      *int
	WeekReset        *time.Time
}

// Empty reports whether the parse yielded nothing at all.
func (s Snapshot) Empty() bool {
	return s.SessionPercent == nil && s.SessionReset == nil &&
		s.WeekPercent == nil && s.WeekReset == nil
}

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }
