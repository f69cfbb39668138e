package id

import (
	"crypto/rand"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const base62Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// shortLen is the length of ids produced by NewShort.
const shortLen = 12

// counter disambiguates sortable ids generated within the same millisecond.
var counter atomic.Uint64

// NewUUID returns a random UUID v4 string.
func NewUUID() string {
	return uuid.New().String()
}

// NewShort returns a 12-character base62 random id. Compact enough for
// user-facing references while keeping collisions negligible.
func NewShort() string {
	buf := make([]byte, shortLen)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform is broken beyond recovery
		panic(fmt.Sprintf("id: reading random bytes: %v", err))
	}
	for i, b := range buf {
		buf[i] = base62Chars[int(b)%len(base62Chars)]
	}
	return string(buf)
}

// NewPrefixed returns a short id with a type prefix, e.g. "usr_h7Jd0aQkXz2M".
func NewPrefixed(prefix string) string {
	return prefix + "_" + NewShort()
}

// NewSortable returns a 20-character id that sorts lexicographically by
// creation time: a 13-digit millisecond timestamp followed by a 7-digit
// counter. Ids generated within the same millisecond remain unique and
// ordered.
func NewSortable() string {
	ts := time.Now().UnixMilli()
	n := counter.Add(1) % 10_000_000
	return fmt.Sprintf("%013d%07d", ts, n)
}
