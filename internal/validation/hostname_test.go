package validation

import (
	"strings"
	"testing"
)

func TestCheckHostname(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts hostnameOpts
		ok   bool
	}{
		{"simple host", "www.example.com", hostnameOpts{}, true},
		{"trailing dot", "www.example.com.", hostnameOpts{}, true},
		{"single label", "localhost", hostnameOpts{}, true},
		{"digits and hyphens", "a-1.b-2.example.com", hostnameOpts{}, true},
		{"wildcard allowed", "*.example.com", hostnameOpts{wildcard: true}, true},
		{"wildcard refused", "*.example.com", hostnameOpts{}, false},
		{"wildcard not leftmost", "www.*.example.com", hostnameOpts{wildcard: true}, false},
		{"underscore allowed", "_dmarc.example.com", hostnameOpts{underscore: true}, true},
		{"underscore refused", "_dmarc.example.com", hostnameOpts{}, false},
		{"slash allowed", "160/27.236.20.172.in-addr.arpa", hostnameOpts{slash: true}, true},
		{"slash refused", "160/27.236.20.172.in-addr.arpa", hostnameOpts{}, false},
		{"empty name", "", hostnameOpts{}, false},
		{"empty label", "www..example.com", hostnameOpts{}, false},
		{"leading hyphen", "-www.example.com", hostnameOpts{}, false},
		{"trailing hyphen", "www-.example.com", hostnameOpts{}, false},
		{"space inside", "www example.com", hostnameOpts{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := checkHostname(tt.in, tt.opts)
			if (len(errs) == 0) != tt.ok {
				t.Errorf("checkHostname(%q, %+v) errors = %v, want ok = %v", tt.in, tt.opts, errs, tt.ok)
			}
		})
	}
}

func TestCheckHostnameLengthLimits(t *testing.T) {
	longLabel := strings.Repeat("a", 64)
	if errs := checkHostname(longLabel+".example.com", hostnameOpts{}); len(errs) == 0 {
		t.Error("label longer than 63 characters must be rejected")
	}

	okLabel := strings.Repeat("a", 63)
	if errs := checkHostname(okLabel+".example.com", hostnameOpts{}); len(errs) != 0 {
		t.Errorf("63-character label must be accepted, got %v", errs)
	}

	longName := strings.Repeat("abcdefgh.", 32) + "com"
	if len(longName) <= maxNameLen {
		t.Fatalf("test name not long enough: %d", len(longName))
	}
	if errs := checkHostname(longName, hostnameOpts{}); len(errs) == 0 {
		t.Error("name longer than 255 characters must be rejected")
	}
}

func TestParseTTL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		problem bool
	}{
		{"blank uses default", "", 86400, false},
		{"whitespace uses default", "  ", 86400, false},
		{"explicit value", "3600", 3600, false},
		{"zero", "0", 0, false},
		{"negative", "-1", 0, true},
		{"not a number", "soon", 0, true},
		{"too large", "2147483648", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, problem := parseTTL(tt.in, 86400)
			if (problem != "") != tt.problem {
				t.Fatalf("parseTTL(%q) problem = %q, want problem = %v", tt.in, problem, tt.problem)
			}
			if !tt.problem && got != tt.want {
				t.Errorf("parseTTL(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		defaultVal int
		want       int
		problem    bool
	}{
		{"blank uses type default", "", 10, 10, false},
		{"blank uses zero default", "", 0, 0, false},
		{"explicit value", "20", 10, 20, false},
		{"upper bound", "65535", 0, 65535, false},
		{"above upper bound", "65536", 0, 0, true},
		{"negative", "-1", 0, 0, true},
		{"not a number", "high", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, problem := parsePriority(tt.in, tt.defaultVal)
			if (problem != "") != tt.problem {
				t.Fatalf("parsePriority(%q) problem = %q, want problem = %v", tt.in, problem, tt.problem)
			}
			if !tt.problem && got != tt.want {
				t.Errorf("parsePriority(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
