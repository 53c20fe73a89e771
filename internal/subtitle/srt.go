package subtitle

import "fmt"

// FormatTimestamp renders seconds as an SRT timestamp, HH:MM:SS,mmm.
// Fractional seconds are truncated to whole milliseconds, not rounded, and
// the hour field grows past two digits rather than wrapping at 24.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	whole := int64(seconds)
	millis := int64((seconds - float64(whole)) * 1000)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", whole/3600, (whole/60)%60, whole%60, millis)
}
