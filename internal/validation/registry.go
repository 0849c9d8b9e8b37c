package validation

import (
	"errors"
	"sort"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// ErrUnsupportedType is returned when no validator exists for a record type.
var ErrUnsupportedType = errors.New("unsupported record type")

// Validator is the common contract all record-type validators implement.
// Priority and TTL arrive as raw form input; blank values fall back to the
// type default and defaultTTL respectively.
type Validator interface {
	Validate(content, name, prio, ttl string, defaultTTL int) *Result
}

// Registry dispatches record validation by type. The supported set is
// closed and immutable after construction: looking up anything else is an
// error, never a silent pass.
type Registry struct {
	validators map[string]Validator
}

// NewRegistry builds a registry covering every supported record type.
func NewRegistry() *Registry {
	return &Registry{
		validators: map[string]Validator{
			"A":     AValidator{},
			"AAAA":  AAAAValidator{},
			"CNAME": CNAMEValidator{},
			"MX":    MXValidator{},
			"NS":    NSValidator{},
			"PTR":   PTRValidator{},
			"SOA":   SOAValidator{},
			"SPF":   SPFValidator{},
			"SRV":   SRVValidator{},
			"TXT":   TXTValidator{},
		},
	}
}

// Lookup returns the validator for a record type, case-insensitively.
func (r *Registry) Lookup(recordType string) (Validator, error) {
	t := strings.ToUpper(strings.TrimSpace(recordType))

	v, ok := r.validators[t]
	if !ok {
		return nil, pkgerrors.Wrapf(ErrUnsupportedType, "%q", t)
	}

	return v, nil
}

// Validate dispatches content/name/prio/ttl to the validator for recordType.
func (r *Registry) Validate(recordType, content, name, prio, ttl string, defaultTTL int) (*Result, error) {
	v, err := r.Lookup(recordType)
	if err != nil {
		return nil, err
	}

	return v.Validate(content, name, prio, ttl, defaultTTL), nil
}

// Types returns the supported record types in sorted order.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.validators))
	for t := range r.validators {
		types = append(types, t)
	}

	sort.Strings(types)

	return types
}
