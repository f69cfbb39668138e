// Package id provides small helpers for generating unique identifiers in a
// handful of common shapes.
//
//   - NewUUID – standard random UUID v4, via github.com/google/uuid
//   - NewShort – 12-character base62 id for compact references
//   - NewPrefixed – short id with a type prefix, e.g. "usr_h7Jd0aQkXz2M"
//   - NewSortable – 20-digit id ordered by creation time, for log and
//     database keys that should sort chronologically
//
// All generators are safe for concurrent use.
package id
