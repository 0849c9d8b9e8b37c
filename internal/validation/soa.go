package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/GoPowerDNS-Admin/record-engine/internal/dnsname"
)

const soaContentFields = 7

var soaTimerFields = []string{"serial", "refresh", "retry", "expire", "minimum"}

// SOAValidator checks start-of-authority records: primary nameserver,
// hostmaster and the five timer fields.
type SOAValidator struct{}

// Validate implements the Validator contract for SOA records.
func (SOAValidator) Validate(content, name, prio, ttl string, defaultTTL int) *Result {
	errs := checkHostname(name, hostnameOpts{})

	fields := strings.Fields(strings.TrimSpace(content))
	if len(fields) != soaContentFields {
		errs = append(errs, "SOA content must contain primary nameserver, hostmaster and five numeric fields.")
	} else {
		if len(checkHostname(fields[0], hostnameOpts{})) > 0 {
			errs = append(errs, "SOA primary nameserver must be a valid hostname.")
		}

		if len(checkHostname(fields[1], hostnameOpts{})) > 0 {
			errs = append(errs, "SOA hostmaster must be a valid hostname.")
		}

		for i, timer := range soaTimerFields {
			if n, err := strconv.Atoi(fields[i+2]); err != nil || n < 0 {
				errs = append(errs, fmt.Sprintf("SOA %s must be a non-negative number.", timer))
			}
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
		Content: strings.Join(fields, " "),
		TTL:     ttlVal,
		Prio:    prioVal,
	})
}
