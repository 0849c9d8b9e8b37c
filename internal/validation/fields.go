package validation

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	maxTTL      = 2147483647
	maxPriority = 65535
	maxNameLen  = 255
	maxLabelLen = 63

	// defaultMailPriority is the fallback for record types that route by
	// preference (MX, SRV) when the priority input is blank.
	defaultMailPriority = 10
)

// parseTTL resolves the TTL input: blank means defaultTTL, anything else
// must be a base-10 integer within the signed 32-bit range. A non-empty
// problem string describes the failure for the result's error list.
func parseTTL(ttl string, defaultTTL int) (value int, problem string) {
	s := strings.TrimSpace(ttl)
	if s == "" {
		return defaultTTL, ""
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > maxTTL {
		return 0, fmt.Sprintf("Invalid TTL value %q, must be a number between 0 and %d.", ttl, maxTTL)
	}

	return n, ""
}

// parsePriority resolves the priority input: blank means the record type's
// default, anything else must be an integer between 0 and 65535.
func parsePriority(prio string, defaultPrio int) (value int, problem string) {
	s := strings.TrimSpace(prio)
	if s == "" {
		return defaultPrio, ""
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > maxPriority {
		return 0, fmt.Sprintf("Invalid priority value %q, must be a number between 0 and %d.", prio, maxPriority)
	}

	return n, ""
}

// printable reports whether s is free of ASCII control characters.
func printable(s string) bool {
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return false
		}
	}

	return true
}
