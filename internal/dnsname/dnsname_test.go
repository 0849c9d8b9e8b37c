package dnsname

import (
	"errors"
	"testing"
)

func TestIsReverseZone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"ipv4 reverse zone", "1.168.192.in-addr.arpa", true},
		{"ipv4 reverse zone trailing dot", "1.168.192.in-addr.arpa.", true},
		{"ipv4 reverse zone uppercase", "1.168.192.IN-ADDR.ARPA", true},
		{"ipv6 reverse zone", "8.b.d.0.1.0.0.2.ip6.arpa", true},
		{"classless delegation label", "160/27.236.20.172.in-addr.arpa", true},
		{"classless delegation first label", "0/26.2.0.192.in-addr.arpa", true},
		{"full ptr name", "1.2.0.192.in-addr.arpa", true},
		{"forward zone", "example.com", false},
		{"forward zone trailing dot", "example.com.", false},
		{"bare in-addr suffix", "in-addr.arpa", false},
		{"bare ip6 suffix", "ip6.arpa", false},
		{"bare suffix trailing dot", "in-addr.arpa.", false},
		{"leading whitespace", " 1.168.192.in-addr.arpa", false},
		{"trailing whitespace", "1.168.192.in-addr.arpa ", false},
		{"empty string", "", false},
		{"empty label", "1..192.in-addr.arpa", false},
		{"label with space", "1 2.192.in-addr.arpa", false},
		{"arpa only", "arpa", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsReverseZone(tt.in); got != tt.want {
				t.Errorf("IsReverseZone(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRegisteredDomain(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"three labels", "www.example.com", "example.com"},
		{"two labels", "example.com", "example.com"},
		{"deep subdomain", "a.b.c.example.com", "example.com"},
		{"cctld second level", "www.example.co.uk", "example.co.uk"},
		{"cctld registered domain itself", "example.co.uk", "example.co.uk"},
		{"cctld australia", "mail.example.com.au", "example.com.au"},
		{"trailing dot", "www.example.com.", "example.com"},
		{"casing preserved", "WWW.Example.COM", "Example.COM"},
		{"cctld suffix case-insensitive", "www.Example.Co.UK", "Example.Co.UK"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RegisteredDomain(tt.in)
			if err != nil {
				t.Fatalf("RegisteredDomain(%q) returned error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("RegisteredDomain(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRegisteredDomainErrors(t *testing.T) {
	if _, err := RegisteredDomain("localhost"); !errors.Is(err, ErrSingleLabel) {
		t.Errorf("RegisteredDomain(localhost) error = %v, want ErrSingleLabel", err)
	}
	if _, err := RegisteredDomain("com."); !errors.Is(err, ErrSingleLabel) {
		t.Errorf("RegisteredDomain(com.) error = %v, want ErrSingleLabel", err)
	}
	if _, err := RegisteredDomain(""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("RegisteredDomain(\"\") error = %v, want ErrEmptyName", err)
	}
}

func TestSubdomainName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single subdomain label", "www.example.com", "www"},
		{"multiple subdomain labels", "a.b.example.com", "a.b"},
		{"two labels unchanged", "example.com", "example.com"},
		{"single label unchanged", "localhost", "localhost"},
		{"cctld three label form", "example.co.uk", "example"},
		{"cctld with subdomain", "sub.example.co.uk", "sub"},
		{"cctld deep subdomain", "a.b.example.co.uk", "a.b"},
		{"trailing dot", "www.example.com.", "www"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SubdomainName(tt.in); got != tt.want {
				t.Errorf("SubdomainName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripZoneSuffix(t *testing.T) {
	tests := []struct {
		name string
		in   string
		zone string
		want string
	}{
		{"apex", "example.com", "example.com", "@"},
		{"apex trailing dots", "example.com.", "example.com.", "@"},
		{"apex case-insensitive", "EXAMPLE.COM", "example.com", "@"},
		{"subdomain", "www.example.com", "example.com", "www"},
		{"subdomain keeps casing", "WWW.Example.COM", "example.com", "WWW"},
		{"deep subdomain", "a.b.example.com", "example.com", "a.b"},
		{"name outside zone unchanged", "www.other.org", "example.com", "www.other.org"},
		{"already relative unchanged", "www", "example.com", "www"},
		{"zone suffix without dot boundary", "badexample.com", "example.com", "badexample.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripZoneSuffix(tt.in, tt.zone); got != tt.want {
				t.Errorf("StripZoneSuffix(%q, %q) = %q, want %q", tt.in, tt.zone, got, tt.want)
			}
		})
	}
}

func TestStripZoneSuffixIdempotent(t *testing.T) {
	zone := "example.com"
	for _, in := range []string{"www", "@", "a.b", "www.other.org"} {
		once := StripZoneSuffix(in, zone)
		twice := StripZoneSuffix(once, zone)
		if once != twice {
			t.Errorf("StripZoneSuffix not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestRestoreZoneSuffix(t *testing.T) {
	tests := []struct {
		name     string
		relative string
		zone     string
		want     string
	}{
		{"at sign is apex", "@", "example.com", "example.com"},
		{"empty is apex", "", "example.com", "example.com"},
		{"relative name", "www", "example.com", "www.example.com"},
		{"relative with trailing dot", "www.", "example.com", "www.example.com"},
		{"already qualified", "www.example.com", "example.com", "www.example.com"},
		{"equals zone", "example.com", "example.com", "example.com"},
		{"zone with trailing dot", "www", "example.com.", "www.example.com"},
		{"multi label relative", "a.b", "example.com", "a.b.example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RestoreZoneSuffix(tt.relative, tt.zone); got != tt.want {
				t.Errorf("RestoreZoneSuffix(%q, %q) = %q, want %q", tt.relative, tt.zone, got, tt.want)
			}
		})
	}
}

func TestStripRestoreRoundTrip(t *testing.T) {
	zone := "example.com"
	for _, name := range []string{"example.com", "www.example.com", "a.b.example.com", "www.example.com."} {
		relative := StripZoneSuffix(name, zone)
		restored := RestoreZoneSuffix(relative, zone)
		if restored != Trimmed(name) {
			t.Errorf("round trip for %q: stripped to %q, restored to %q", name, relative, restored)
		}
	}
}

func TestFqdn(t *testing.T) {
	if got := Fqdn("example.com"); got != "example.com." {
		t.Errorf("Fqdn(example.com) = %q, want example.com.", got)
	}
	if got := Fqdn("example.com."); got != "example.com." {
		t.Errorf("Fqdn(example.com.) = %q, want example.com.", got)
	}
}

func TestTrimmed(t *testing.T) {
	if got := Trimmed("example.com."); got != "example.com" {
		t.Errorf("Trimmed(example.com.) = %q, want example.com", got)
	}
	if got := Trimmed("example.com"); got != "example.com" {
		t.Errorf("Trimmed(example.com) = %q, want example.com", got)
	}
}
