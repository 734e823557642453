// Package notify posts desktop notifications when usage crosses a
// configured threshold, via the org.freedesktop.Notifications D-Bus
// service. Notification failures are never fatal: a statusbar update must
// succeed on headless hosts too.
package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/sirupsen/logrus"

	"github.com/claude-tools/claude-statusbar/internal/usage"
)

const (
	notifyService   = "org.freedesktop.Notifications"
	notifyPath      = "/org/freedesktop/Notifications"
	notifyMethod    = "org.freedesktop.Notifications.Notify"
	notifyTimeoutMs = 10000
)

// UsageAlert posts a notification when the session or week percentage has
// reached threshold. A threshold of 0 disables alerts entirely.
func UsageAlert(threshold int, snap usage.Snapshot, log *logrus.Entry) {
	if threshold <= 0 {
		return
	}

	body := alertBody(threshold, snap)
	if body == "" {
		return
	}

	if err := send("Claude usage warning", body); err != nil {
		log.WithError(err).Debug("desktop notification failed")
	}
}

func alertBody(threshold int, snap usage.Snapshot) string {
	if snap.SessionPercent != nil && *snap.SessionPercent >= threshold {
		return fmt.Sprintf("Session usage at %d%%", *snap.SessionPercent)
	}
	if snap.WeekPercent != nil && *snap.WeekPercent >= threshold {
		return fmt.Sprintf("Weekly usage at %d%%", *snap.WeekPercent)
	}
	return ""
}

func send(summary, body string) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return err
	}

	obj := conn.Object(notifyService, dbus.ObjectPath(notifyPath))
	call := obj.Call(notifyMethod, 0,
		"claude-statusbar", // app name
		uint32(0),          // replaces id
		"",                 // icon
		summary,
		body,
		[]string{},               // actions
		map[string]dbus.Variant{}, // hints
		int32(notifyTimeoutMs))
	return call.Err
}
