package validation

import (
	"errors"
	"testing"
)

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()

	for _, recordType := range []string{"A", "AAAA", "CNAME", "MX", "NS", "PTR", "SOA", "SPF", "SRV", "TXT"} {
		v, err := r.Lookup(recordType)
		if err != nil {
			t.Errorf("Lookup(%q) returned error: %v", recordType, err)
		}
		if v == nil {
			t.Errorf("Lookup(%q) returned nil validator", recordType)
		}
	}
}

func TestRegistryLookupCaseInsensitive(t *testing.T) {
	r := NewRegistry()

	for _, recordType := range []string{"a", "srv", "Txt", " MX "} {
		if _, err := r.Lookup(recordType); err != nil {
			t.Errorf("Lookup(%q) returned error: %v", recordType, err)
		}
	}
}

func TestRegistryLookupUnsupported(t *testing.T) {
	r := NewRegistry()

	for _, recordType := range []string{"LOC", "NAPTR", "DNSKEY", "", "bogus"} {
		v, err := r.Lookup(recordType)
		if err == nil {
			t.Errorf("Lookup(%q) expected error, got validator %T", recordType, v)
			continue
		}
		if !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("Lookup(%q) error = %v, want ErrUnsupportedType", recordType, err)
		}
		if v != nil {
			t.Errorf("Lookup(%q) must not return a validator with an error", recordType)
		}
	}
}

func TestRegistryValidate(t *testing.T) {
	r := NewRegistry()

	res, err := r.Validate("A", "192.0.2.1", "www.example.com", "", "", 86400)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if !res.IsValid() {
		t.Errorf("expected valid result, got errors: %v", res.Errors)
	}

	if _, err := r.Validate("LOC", "x", "www.example.com", "", "", 86400); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("Validate(LOC) error = %v, want ErrUnsupportedType", err)
	}
}

func TestRegistryTypes(t *testing.T) {
	r := NewRegistry()

	types := r.Types()
	want := []string{"A", "AAAA", "CNAME", "MX", "NS", "PTR", "SOA", "SPF", "SRV", "TXT"}
	if len(types) != len(want) {
		t.Fatalf("Types() = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("Types()[%d] = %q, want %q", i, types[i], want[i])
		}
	}
}
