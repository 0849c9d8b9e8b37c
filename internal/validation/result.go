// Package validation implements per-record-type validation of DNS record
// data behind a closed registry. Validators are pure: they normalize and
// check one record's fields and report everything wrong with them as data,
// never as errors or panics.
package validation

// RecordData is the coerced, persistence-ready form of a record that passed
// validation. TTL and Prio are resolved integers, never raw input echoes.
type RecordData struct {
	Name    string
	Content string
	TTL     int
	Prio    int
}

// Result carries the outcome of validating one record: either a complete
// data mapping, or the ordered list of everything wrong with the input.
// IsValid is true exactly when the error list is empty, and a valid result
// always has Data set.
type Result struct {
	Errors []string
	Data   *RecordData
}

// IsValid reports whether validation passed.
func (r *Result) IsValid() bool {
	return len(r.Errors) == 0
}

func valid(data RecordData) *Result {
	return &Result{Data: &data}
}

func invalid(errs ...string) *Result {
	return &Result{Errors: errs}
}
