package dnsname

import (
	"github.com/miekg/dns"
	"github.com/pkg/errors"
)

// ReverseName converts an IP address into the name of its PTR record:
// octet-reversed under in-addr.arpa for IPv4, nibble-expanded under
// ip6.arpa for IPv6. The result carries no trailing dot.
func ReverseName(addr string) (string, error) {
	arpa, err := dns.ReverseAddr(addr)
	if err != nil {
		return "", errors.Wrapf(err, "no PTR name for %q", addr)
	}

	return Trimmed(arpa), nil
}
