package validation

import (
	"regexp"
	"strings"

	"github.com/GoPowerDNS-Admin/record-engine/internal/dnsname"
)

// quotedSequenceRE matches one or more RFC-1035-style quoted strings
// separated by whitespace. Each quoted string allows escaping via backslash
// (e.g., \" for a literal quote).
var quotedSequenceRE = regexp.MustCompile(`^\s*"([^"\\]|\\.)*"(?:\s+"([^"\\]|\\.)*")*\s*$`)

// isQuotedSequence returns true if s consists of one or more
// RFC-1035-style quoted strings separated by whitespace: "..." "..."
func isQuotedSequence(s string) bool {
	return quotedSequenceRE.MatchString(s)
}

// checkTextContent validates free-text record content: non-empty, printable,
// and correctly quoted when the author chose to quote it.
func checkTextContent(content string) []string {
	c := strings.TrimSpace(content)
	if c == "" {
		return []string{"Content must not be empty."}
	}

	var errs []string

	if !printable(c) {
		errs = append(errs, "Content contains control characters.")
	}

	if strings.Contains(c, `"`) && !isQuotedSequence(c) {
		errs = append(errs, "Content quoting is unbalanced.")
	}

	return errs
}

// TXTValidator checks free-text records. Names may be underscore-led
// (_dmarc and friends) and wildcards are accepted.
type TXTValidator struct{}

// Validate implements the Validator contract for TXT records.
func (TXTValidator) Validate(content, name, prio, ttl string, defaultTTL int) *Result {
	errs := checkHostname(name, hostnameOpts{wildcard: true, underscore: true})
	errs = append(errs, checkTextContent(content)...)

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

	return valid(RecordData{
		Name:    dnsname.Trimmed(name),
		Content: strings.TrimSpace(content),
		TTL:     ttlVal,
		Prio:    prioVal,
	})
}

// SPFValidator checks sender policy records: TXT grammar plus the v=spf1
// version tag.
type SPFValidator struct{}

// Validate implements the Validator contract for SPF records.
func (SPFValidator) Validate(content, name, prio, ttl string, defaultTTL int) *Result {
	errs := checkHostname(name, hostnameOpts{wildcard: true, underscore: true})
	errs = append(errs, checkTextContent(content)...)

	if c := strings.TrimSpace(content); c != "" {
		if !strings.HasPrefix(strings.TrimPrefix(c, `"`), "v=spf1") {
			errs = append(errs, `SPF content must start with "v=spf1".`)
		}
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

	return valid(RecordData{
		Name:    dnsname.Trimmed(name),
		Content: strings.TrimSpace(content),
		TTL:     ttlVal,
		Prio:    prioVal,
	})
}
