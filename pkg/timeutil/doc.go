// Package timeutil provides small time helpers: Unix timestamps and
// human-readable duration parsing and formatting.
//
// FormatDuration and ParseDuration round-trip compact duration strings such
// as "500ms", "1.5s", "2m", "1h" or "3d" that are convenient in
// configuration files and log output. Unlike time.ParseDuration, a day
// suffix is supported and a bare number is treated as seconds.
//
//	d, err := timeutil.ParseDuration("90m")  // 90 * time.Minute
//	timeutil.FormatDuration(d)               // "1h 30m"
//
// Parse failures return ErrInvalidDuration, comparable with errors.Is.
package timeutil
