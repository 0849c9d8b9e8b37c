package dnsname

import (
	"errors"
	"regexp"
	"strings"
)

const (
	suffixInAddrArpa = ".in-addr.arpa"
	suffixIP6Arpa    = ".ip6.arpa"
)

var (
	// ErrEmptyName is returned when a name is empty after normalization.
	ErrEmptyName = errors.New("name is empty")
	// ErrSingleLabel is returned when a name has only one label and therefore no registered domain.
	ErrSingleLabel = errors.New("name has only one label")
)

// reverseLabelRE matches a label inside a reverse zone name: alphanumerics
// and inner hyphens, optionally followed by an RFC 2317 prefix-length
// marker such as "160/27".
var reverseLabelRE = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?(/[0-9]{1,3})?$`)

// secondLevelSuffixes lists country-code second-level registration suffixes
// treated as a unit when extracting the registered domain. A small fixed
// table, not the Public Suffix List.
var secondLevelSuffixes = map[string]struct{}{
	"co.uk": {}, "org.uk": {}, "me.uk": {}, "ac.uk": {}, "gov.uk": {},
	"sch.uk": {}, "net.uk": {}, "plc.uk": {}, "ltd.uk": {},
	"com.au": {}, "net.au": {}, "org.au": {}, "edu.au": {}, "gov.au": {}, "asn.au": {}, "id.au": {},
	"co.nz": {}, "net.nz": {}, "org.nz": {}, "govt.nz": {}, "ac.nz": {}, "school.nz": {}, "geek.nz": {},
	"co.za": {}, "net.za": {}, "org.za": {}, "web.za": {},
	"com.br": {}, "net.br": {}, "org.br": {},
	"co.jp": {}, "ne.jp": {}, "or.jp": {}, "ac.jp": {}, "go.jp": {},
	"com.cn": {}, "net.cn": {}, "org.cn": {}, "gov.cn": {},
	"co.in": {}, "net.in": {}, "org.in": {}, "ac.in": {},
	"com.mx": {}, "com.ar": {}, "com.tr": {}, "com.sg": {}, "com.hk": {}, "com.tw": {},
	"co.kr": {}, "or.kr": {}, "co.il": {}, "org.il": {}, "co.th": {}, "in.th": {},
}

// Trimmed strips one trailing dot, the form the PowerDNS tables store.
func Trimmed(name string) string {
	return strings.TrimSuffix(name, ".")
}

// Fqdn ensures the name carries a trailing dot.
func Fqdn(name string) string {
	if strings.HasSuffix(name, ".") {
		return name
	}

	return name + "."
}

// IsReverseZone checks if the given name is a reverse DNS zone or lives
// inside one. The bare in-addr.arpa/ip6.arpa suffixes alone do not qualify,
// and names with leading or trailing whitespace never do.
func IsReverseZone(name string) bool {
	if name == "" || strings.TrimSpace(name) != name {
		return false
	}

	n := strings.ToLower(Trimmed(name))

	var prefix string

	switch {
	case strings.HasSuffix(n, suffixInAddrArpa):
		prefix = strings.TrimSuffix(n, suffixInAddrArpa)

	case strings.HasSuffix(n, suffixIP6Arpa):
		prefix = strings.TrimSuffix(n, suffixIP6Arpa)

	default:
		return false
	}

	if prefix == "" {
		return false
	}

	for _, label := range strings.Split(prefix, ".") {
		if !reverseLabelRE.MatchString(label) {
			return false
		}
	}

	return true
}

// RegisteredDomain extracts the registrable domain from a fully-qualified
// name: the last two labels, or the last three when the trailing two form a
// recognized second-level country-code suffix such as "co.uk". Single-label
// input has no registered domain and returns an error.
func RegisteredDomain(fqdn string) (string, error) {
	n := Trimmed(fqdn)
	if n == "" {
		return "", ErrEmptyName
	}

	labels := strings.Split(n, ".")
	if len(labels) == 1 {
		return "", ErrSingleLabel
	}

	if len(labels) >= 3 {
		last2 := strings.ToLower(labels[len(labels)-2] + "." + labels[len(labels)-1])
		if _, ok := secondLevelSuffixes[last2]; ok {
			return strings.Join(labels[len(labels)-3:], "."), nil
		}
	}

	return strings.Join(labels[len(labels)-2:], "."), nil
}

// SubdomainName returns the labels before the registered domain, joined by
// dots. Names with two or fewer labels come back unchanged; the three-label
// ccTLD form ("example.co.uk") yields its first label.
func SubdomainName(fqdn string) string {
	n := Trimmed(fqdn)

	labels := strings.Split(n, ".")
	if len(labels) <= 2 {
		return n
	}

	reg, err := RegisteredDomain(n)
	if err != nil {
		return n
	}

	if strings.EqualFold(n, reg) {
		return labels[0]
	}

	return strings.TrimSuffix(n, "."+reg)
}

// StripZoneSuffix returns the name a record is displayed and edited under:
// "@" for the zone apex, the prefix with its original casing when name sits
// below zone, and name unchanged otherwise. Comparison is case-insensitive
// and tolerates one trailing dot on either argument.
func StripZoneSuffix(name, zone string) string {
	n := Trimmed(name)
	z := Trimmed(zone)

	if strings.EqualFold(n, z) {
		return "@"
	}

	if len(n) > len(z)+1 && strings.EqualFold(n[len(n)-len(z)-1:], "."+z) {
		return n[:len(n)-len(z)-1]
	}

	return name
}

// RestoreZoneSuffix is the inverse of StripZoneSuffix: it qualifies a
// relative name with its zone. "@" and the empty string map to the zone
// itself; names already carrying the zone suffix come back unchanged.
func RestoreZoneSuffix(relative, zone string) string {
	r := Trimmed(relative)
	z := Trimmed(zone)

	if r == "" || r == "@" {
		return z
	}

	if strings.EqualFold(r, z) {
		return r
	}

	if len(r) > len(z)+1 && strings.EqualFold(r[len(r)-len(z)-1:], "."+z) {
		return r
	}

	return r + "." + z
}
