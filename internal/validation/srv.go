package validation

import (
	"strconv"
	"strings"

	"github.com/GoPowerDNS-Admin/record-engine/internal/dnsname"
)

const srvContentFields = 3

// SRVValidator checks service locator records. The name must take the
// _service._proto.name form and the content carries exactly weight, port
// and target. Priority defaults to 10.
type SRVValidator struct{}

// Validate implements the Validator contract for SRV records.
func (SRVValidator) Validate(content, name, prio, ttl string, defaultTTL int) *Result {
	errs := checkSRVName(name)

	fields := strings.Fields(strings.TrimSpace(content))
	if len(fields) != srvContentFields {
		errs = append(errs, "SRV content must contain exactly weight, port and target.")
	} else {
		if !inUint16Range(fields[0]) {
			errs = append(errs, "SRV weight must be a number between 0 and 65535.")
		}

		if !inUint16Range(fields[1]) {
			errs = append(errs, "SRV port must be a number between 0 and 65535.")
		}

		if target := fields[2]; target != "." && len(checkHostname(target, hostnameOpts{})) > 0 {
			errs = append(errs, `SRV target must be "." or a valid hostname.`)
		}
	}

	prioVal, problem := parsePriority(prio, defaultMailPriority)
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

// checkSRVName enforces the _service._proto.name form: exactly two leading
// underscore labels followed by at least one more label.
func checkSRVName(name string) []string {
	n := strings.TrimSuffix(name, ".")
	if n == "" {
		return []string{"Name must not be empty."}
	}

	if len(n) > maxNameLen {
		return []string{"Name exceeds 255 characters."}
	}

	labels := strings.Split(n, ".")
	if len(labels) < 3 ||
		!underscoreLabelRE.MatchString(labels[0]) ||
		!underscoreLabelRE.MatchString(labels[1]) {
		return []string{"SRV name must take the form _service._proto.name."}
	}

	if rest := strings.Join(labels[2:], "."); len(checkHostname(rest, hostnameOpts{})) > 0 {
		return []string{"SRV name must end in a valid domain name."}
	}

	return nil
}

func inUint16Range(s string) bool {
	n, err := strconv.Atoi(s)

	return err == nil && n >= 0 && n <= maxPriority
}
