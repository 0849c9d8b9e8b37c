package validation

import (
	"strings"

	"github.com/GoPowerDNS-Admin/record-engine/internal/dnsname"
)

// checkHostContent validates record content that must be a hostname, such
// as CNAME and NS targets. Label-level details collapse into one message.
func checkHostContent(content string) []string {
	c := strings.TrimSpace(content)
	if c == "" {
		return []string{"Content must not be empty."}
	}

	if len(checkHostname(c, hostnameOpts{})) > 0 {
		return []string{"Content must be a valid hostname."}
	}

	return nil
}

// hostRecordResult assembles the shared tail of the hostname-content
// validators: priority and TTL resolution plus the final data mapping.
func hostRecordResult(errs []string, name, content, prio, ttl string, defaultPrio, defaultTTL int) *Result {
	prioVal, problem := parsePriority(prio, defaultPrio)
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

	return valid(RecordData{
		Name:    dnsname.Trimmed(name),
		Content: dnsname.Trimmed(strings.TrimSpace(content)),
		TTL:     ttlVal,
		Prio:    prioVal,
	})
}

// CNAMEValidator checks alias records.
type CNAMEValidator struct{}

// Validate implements the Validator contract for CNAME records.
func (CNAMEValidator) Validate(content, name, prio, ttl string, defaultTTL int) *Result {
	errs := checkHostname(name, hostnameOpts{wildcard: true})
	errs = append(errs, checkHostContent(content)...)

	return hostRecordResult(errs, name, content, prio, ttl, 0, defaultTTL)
}

// NSValidator checks delegation records.
type NSValidator struct{}

// Validate implements the Validator contract for NS records.
func (NSValidator) Validate(content, name, prio, ttl string, defaultTTL int) *Result {
	errs := checkHostname(name, hostnameOpts{})
	errs = append(errs, checkHostContent(content)...)

	return hostRecordResult(errs, name, content, prio, ttl, 0, defaultTTL)
}

// MXValidator checks mail exchanger records. Priority defaults to 10.
type MXValidator struct{}

// Validate implements the Validator contract for MX records.
func (MXValidator) Validate(content, name, prio, ttl string, defaultTTL int) *Result {
	errs := checkHostname(name, hostnameOpts{})
	errs = append(errs, checkHostContent(content)...)

	return hostRecordResult(errs, name, content, prio, ttl, defaultMailPriority, defaultTTL)
}

// PTRValidator checks reverse pointer records. Names may carry RFC 2317
// prefix-length labels ("160/27").
type PTRValidator struct{}

// Validate implements the Validator contract for PTR records.
func (PTRValidator) Validate(content, name, prio, ttl string, defaultTTL int) *Result {
	errs := checkHostname(name, hostnameOpts{slash: true})
	errs = append(errs, checkHostContent(content)...)

	return hostRecordResult(errs, name, content, prio, ttl, 0, defaultTTL)
}
