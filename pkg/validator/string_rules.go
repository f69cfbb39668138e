package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
		},
	}
}

func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
		},
	}
}

// LenBetween validates that a string's length is within [min, max].
func LenBetween(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min && len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %d and %d characters long", min, max),
		},
	}
}

// Alphanumeric validates that a string is non-empty and contains only
// letters and digits.
func Alphanumeric(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return false
			}
			for _, r := range value {
				if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain only letters and digits",
		},
	}
}

// Identifier validates that a string is a valid identifier: an ASCII letter
// or underscore followed by ASCII letters, digits or underscores.
func Identifier(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return isIdentifier(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid identifier",
		},
	}
}

// Matches validates that a string matches the given compiled pattern.
// Compile the pattern once at package level rather than per call.
func Matches(field, value string, pattern *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			return pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must match pattern %s", pattern.String()),
		},
	}
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
