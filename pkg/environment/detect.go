package environment

import (
	"os"
	"strings"
)

// detectVars are checked in order by Detect. The first one set and non-empty
// wins.
var detectVars = []string{"ENV", "ENVIRONMENT", "APP_ENV", "GO_ENV"}

// Detect determines the current environment from the process environment.
// It checks ENV, ENVIRONMENT, APP_ENV and GO_ENV in order and normalizes the
// value through Parse. When nothing is set, Development is assumed.
func Detect() Environment {
	for _, key := range detectVars {
		if v := os.Getenv(key); v != "" {
			return Parse(v)
		}
	}
	return Development
}

// Parse normalizes a raw environment string to one of the known Environment
// values. Common short forms ("dev", "prod", "stage") are recognized;
// anything unrecognized falls back to Development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	case string(Development), "dev", "":
		return Development
	default:
		return Development
	}
}
