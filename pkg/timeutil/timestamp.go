package timeutil

import "time"

// UnixTimestamp returns the current Unix timestamp in seconds.
func UnixTimestamp() int64 {
	return time.Now().Unix()
}

// UnixTimestampMillis returns the current Unix timestamp in milliseconds.
func UnixTimestampMillis() int64 {
	return time.Now().UnixMilli()
}
