package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// hostnameOpts adjusts the hostname grammar per record type.
type hostnameOpts struct {
	wildcard   bool // "*" accepted as the leftmost label
	underscore bool // labels may be underscore-led (_dmarc, service names)
	slash      bool // RFC 2317 "/<prefix>" label suffix (classless reverse zones)
}

var (
	labelRE           = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?$`)
	underscoreLabelRE = regexp.MustCompile(`^_[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?$`)
	slashLabelRE      = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?/[0-9]{1,3}$`)
)

// checkHostname validates a domain name against the classic letter-digit-
// hyphen grammar, loosened per opts. One trailing dot is tolerated. The
// returned messages are in discovery order; nil means the name is fine.
func checkHostname(name string, opts hostnameOpts) []string {
	n := strings.TrimSuffix(name, ".")
	if n == "" {
		return []string{"Name must not be empty."}
	}

	if len(n) > maxNameLen {
		return []string{fmt.Sprintf("Name exceeds %d characters.", maxNameLen)}
	}

	var errs []string

	for i, label := range strings.Split(n, ".") {
		switch {
		case label == "*":
			if !opts.wildcard || i != 0 {
				errs = append(errs, "Wildcard is only allowed as the leftmost label.")
			}

		case label == "":
			errs = append(errs, "Name contains an empty label.")

		case len(label) > maxLabelLen:
			errs = append(errs, fmt.Sprintf("Label %q exceeds %d characters.", label, maxLabelLen))

		case !validLabel(label, opts):
			errs = append(errs, fmt.Sprintf("Invalid characters in label %q.", label))
		}
	}

	return errs
}

func validLabel(label string, opts hostnameOpts) bool {
	if labelRE.MatchString(label) {
		return true
	}

	if opts.underscore && underscoreLabelRE.MatchString(label) {
		return true
	}

	if opts.slash && slashLabelRE.MatchString(label) {
		return true
	}

	return false
}
