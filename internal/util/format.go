package util //nolint:revive // package name util hosts shared formatting helpers for CLI output

import "time"

// FormatTimestamp renders a timestamp for tabular CLI output. Zero times
// render as a dash.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

// FormatTTL renders a Redis TTL for display. Negative TTLs mean the key has
// no expiry.
func FormatTTL(ttl time.Duration) string {
	if ttl < 0 {
		return "none"
	}
	return ttl.Truncate(time.Second).String()
}
