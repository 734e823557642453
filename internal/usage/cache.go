package usage

import (
	"encoding/json"
	"os"
	"time"

	"github.com/claude-tools/claude-statusbar/internal/errors"
)

// Cache is the JSON usage cache shared between the updater and the status
// line. Merging is field-wise: keys this tool does not know about are
// preserved, and absent Snapshot fields never erase stored values.
//
// The file is read-then-written without locking. The updater is expected
// to run serially (one cron tick at a time); concurrent updater runs can
// interleave writes and are not supported.
type Cache struct {
	path string
}

// Cached is the typed view of the cache used by the display path. It is
// read-only there; only Merge mutates the file.
type Cached struct {
	SessionPercent   *int
	SessionReset     *time.Time
	SessionResetHour *int
	WeekPercent      *int
	WeekReset        *time.Time
	LastUpdated      *time.Time
}

// NewCache creates a cache handle for path. The file need not exist yet.
func NewCache(path string) *Cache {
	return &Cache{path: path}
}

// Path returns the cache file location.
func (c *Cache) Path() string {
	return c.path
}

// load reads the raw key-value object, returning an empty map when the
// file is missing or unreadable so a fresh scrape can still be persisted.
func (c *Cache) load() map[string]interface{} {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return map[string]interface{}{}
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return map[string]interface{}{}
	}
	return raw
}

// Read returns the typed view of the cache. Missing or malformed fields
// come back nil; a missing file is not an error.
func (c *Cache) Read() Cached {
	raw := c.load()
	return Cached{
		SessionPercent:   rawInt(raw, "session_percent"),
		SessionReset:     rawTime(raw, "session_reset"),
		SessionResetHour: rawInt(raw, "session_reset_hour"),
		WeekPercent:      rawInt(raw, "week_percent"),
		WeekReset:        rawTime(raw, "week_reset"),
		LastUpdated:      rawTime(raw, "last_updated"),
	}
}

// Merge applies the snapshot's present fields over the stored object,
// stamps last_updated with now, and writes the result back. The merged
// object is returned for reporting. Applying the same snapshot twice
// yields the same contents as applying it once.
func (c *Cache) Merge(snap Snapshot, now time.Time) (map[string]interface{}, error) {
	raw := c.load()

	if snap.SessionPercent != nil {
		raw["session_percent"] = *snap.SessionPercent
	}
	if snap.SessionReset != nil {
		raw["session_reset"] = snap.SessionReset.Format(time.RFC3339)
	}
	if snap.SessionResetHour != nil {
		raw["session_reset_hour"] = *snap.SessionResetHour
	}
	if snap.WeekPercent != nil {
		raw["week_percent"] = *snap.WeekPercent
	}
	if snap.WeekReset != nil {
		raw["week_reset"] = snap.WeekReset.Format(time.RFC3339)
	}
	raw["last_updated"] = now.Format(time.RFC3339)

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return nil, errors.CacheIO(c.path, err)
	}
	if err := os.WriteFile(c.path, append(data, '\n'), 0o644); err != nil {
		return nil, errors.CacheIO(c.path, err)
	}
	return raw, nil
}

func rawInt(raw map[string]interface{}, key string) *int {
	// JSON numbers decode as float64 through interface{}.
	if f, ok := raw[key].(float64); ok {
		return intPtr(int(f))
	}
	return nil
}

func rawTime(raw map[string]interface{}, key string) *time.Time {
	s, ok := raw[key].(string)
	if !ok {
		return nil
	}
	// The cache predates this tool; older writers stored naive local
	// timestamps without an offset.
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return timePtr(t)
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.Local); err == nil {
		return timePtr(t)
	}
	return nil
}
