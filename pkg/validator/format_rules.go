package validator

import (
	"net"
	"net/mail"
	"strconv"
	"strings"
)

// ValidEmail validates that a string is a plausible email address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			value := strings.TrimSpace(value)
			if value == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			// Additional validation for typical web use
			parts := strings.Split(addr.Address, "@")
			if len(parts) != 2 {
				return false
			}
			local, domain := parts[0], parts[1]

			if local == "" || len(local) > 64 {
				return false
			}
			if domain == "" || len(domain) > 255 {
				return false
			}

			// Domain must contain a dot and no consecutive dots anywhere
			if !strings.Contains(domain, ".") || strings.Contains(value, "..") {
				return false
			}

			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

// ValidURL validates that a string is an http or https URL with a host.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			value := strings.TrimSpace(value)

			var rest string
			switch {
			case strings.HasPrefix(value, "https://"):
				rest = strings.TrimPrefix(value, "https://")
			case strings.HasPrefix(value, "http://"):
				rest = strings.TrimPrefix(value, "http://")
			default:
				return false
			}

			return rest != "" && strings.Contains(rest, ".")
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid http or https URL",
		},
	}
}

// ValidIP validates that a string is an IPv4 or IPv6 address.
func ValidIP(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return net.ParseIP(strings.TrimSpace(value)) != nil
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid IP address",
		},
	}
}

// ValidIPv4 validates that a string is an IPv4 address.
func ValidIPv4(field, value string) Rule {
	return Rule{
		Check: func() bool {
			ip := net.ParseIP(strings.TrimSpace(value))
			return ip != nil && ip.To4() != nil
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid IPv4 address",
		},
	}
}

// ValidIPv6 validates that a string is an IPv6 address.
func ValidIPv6(field, value string) Rule {
	return Rule{
		Check: func() bool {
			trimmed := strings.TrimSpace(value)
			ip := net.ParseIP(trimmed)
			return ip != nil && strings.Contains(trimmed, ":")
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid IPv6 address",
		},
	}
}

// ValidSemver validates that a string is a semantic version such as "1.2.3",
// with an optional leading "v" and optional pre-release suffix.
func ValidSemver(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return isSemver(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid semantic version",
		},
	}
}

func isSemver(s string) bool {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return false
	}
	for _, part := range parts {
		numeric, _, _ := strings.Cut(part, "-")
		if _, err := strconv.ParseUint(numeric, 10, 64); err != nil {
			return false
		}
	}
	return true
}
