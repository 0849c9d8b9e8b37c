package validation

import (
	"net"
	"strings"

	"github.com/GoPowerDNS-Admin/record-engine/internal/dnsname"
)

// AValidator checks IPv4 address records.
type AValidator struct{}

// Validate implements the Validator contract for A records.
func (AValidator) Validate(content, name, prio, ttl string, defaultTTL int) *Result {
	var errs []string

	errs = append(errs, checkHostname(name, hostnameOpts{wildcard: true})...)

	c := strings.TrimSpace(content)

	// ParseIP also accepts v4-mapped v6 forms, which are not dotted-quad
	ip := net.ParseIP(c)
	if ip == nil || ip.To4() == nil || strings.Contains(c, ":") {
		errs = append(errs, "Content must be a valid IPv4 address.")
	}

	prioVal, problem := parsePriority(prio, 0)
	if problem != "" {
		errs = append(errs, problem)
	}

	ttlVal, problem := parseTTL(ttl, defaultTTL)
	if problem != "" {
		errs = append(errs, problem)
	}

	if len(errs) > 0 {
		return invalid(errs...)
	}

	return valid(RecordData{Name: dnsname.Trimmed(name), Content: c, TTL: ttlVal, Prio: prioVal})
}

// AAAAValidator checks IPv6 address records.
type AAAAValidator struct{}

// Validate implements the Validator contract for AAAA records. IPv4 and
// IPv4-mapped addresses are rejected.
func (AAAAValidator) Validate(content, name, prio, ttl string, defaultTTL int) *Result {
	var errs []string

	errs = append(errs, checkHostname(name, hostnameOpts{wildcard: true})...)

	c := strings.TrimSpace(content)

	ip := net.ParseIP(c)
	if ip == nil || ip.To4() != nil {
		errs = append(errs, "Content must be a valid IPv6 address.")
	}

	prioVal, problem := parsePriority(prio, 0)
	if problem != "" {
		errs = append(errs, problem)
	}

	ttlVal, problem := parseTTL(ttl, defaultTTL)
	if problem != "" {
		errs = append(errs, problem)
	}

	if len(errs) > 0 {
		return invalid(errs...)
	}

	return valid(RecordData{Name: dnsname.Trimmed(name), Content: c, TTL: ttlVal, Prio: prioVal})
}
