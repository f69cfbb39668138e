package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatDuration renders a duration in a compact human-readable form.
// The two most significant units are shown for long durations:
//
//	90061s -> "1d 1h"
//	3665s  -> "1h 1m"
//	65s    -> "1m 5s"
//	5s     -> "5.000s"
//	500ms  -> "500ms"
func FormatDuration(d time.Duration) string {
	secs := int64(d / time.Second)
	millis := int64(d/time.Millisecond) % 1000

	switch {
	case secs >= 86400:
		return fmt.Sprintf("%dd %dh", secs/86400, (secs%86400)/3600)
	case secs >= 3600:
		return fmt.Sprintf("%dh %dm", secs/3600, (secs%3600)/60)
	case secs >= 60:
		return fmt.Sprintf("%dm %ds", secs/60, secs%60)
	case secs > 0:
		return fmt.Sprintf("%d.%03ds", secs, millis)
	default:
		return fmt.Sprintf("%dms", millis)
	}
}

// ParseDuration parses a human-readable duration string. Recognized suffixes
// are ms, s, m, h and d; seconds accept fractional values; a bare number is
// interpreted as seconds.
//
//	"100ms" -> 100 * time.Millisecond
//	"1.5s"  -> 1500 * time.Millisecond
//	"2m"    -> 2 * time.Minute
//	"1h"    -> time.Hour
//	"1d"    -> 24 * time.Hour
//	"42"    -> 42 * time.Second
//
// Returns ErrInvalidDuration when the string cannot be interpreted.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidDuration)
	}

	switch {
	case strings.HasSuffix(s, "ms"):
		n, err := strconv.ParseUint(strings.TrimSuffix(s, "ms"), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not valid milliseconds", ErrInvalidDuration, s)
		}
		return time.Duration(n) * time.Millisecond, nil

	case strings.HasSuffix(s, "s"):
		f, err := strconv.ParseFloat(strings.TrimSuffix(s, "s"), 64)
		if err != nil || f < 0 {
			return 0, fmt.Errorf("%w: %q is not valid seconds", ErrInvalidDuration, s)
		}
		return time.Duration(f * float64(time.Second)), nil

	case strings.HasSuffix(s, "m"):
		n, err := strconv.ParseUint(strings.TrimSuffix(s, "m"), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not valid minutes", ErrInvalidDuration, s)
		}
		return time.Duration(n) * time.Minute, nil

	case strings.HasSuffix(s, "h"):
		n, err := strconv.ParseUint(strings.TrimSuffix(s, "h"), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not valid hours", ErrInvalidDuration, s)
		}
		return time.Duration(n) * time.Hour, nil

	case strings.HasSuffix(s, "d"):
		n, err := strconv.ParseUint(strings.TrimSuffix(s, "d"), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not valid days", ErrInvalidDuration, s)
		}
		return time.Duration(n) * 24 * time.Hour, nil

	default:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
		}
		return time.Duration(f * float64(time.Second)), nil
	}
}
