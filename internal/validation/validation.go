// Package validation implements the client-side form rules for every
// entity kind. Validators are pure functions: they take a raw form,
// never touch storage, and return a field-indexed map of Portuguese
// error messages. Each field has one ordered rule chain and only the
// first failing rule is surfaced; fields fail independently of each
// other.
package validation

import (
	"sort"
	"strings"
)

// Errors maps a form field name to the message of the first rule that
// rejected it. An empty map means the form is valid.
type Errors map[string]string

// Error implements the error interface so services can return the
// whole map as a single error value.
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "dados inválidos: " + strings.Join(parts, "; ")
}

// check records the first non-empty message for field. Rule helpers
// return "" when the value passes, so callers list the whole chain in
// evaluation order.
func (e Errors) check(field string, msgs ...string) {
	if _, done := e[field]; done {
		return
	}
	for _, m := range msgs {
		if m != "" {
			e[field] = m
			return
		}
	}
}

// OrNil returns the map as an error, or nil when the form is valid.
func (e Errors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
