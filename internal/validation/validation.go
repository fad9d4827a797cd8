// Package validation collects field-level input errors the way the API
// reports them: a map of field name to messages, serialized verbatim into
// the response envelope.
package validation

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldErrors accumulates validation messages per request field.
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

// ValidEmail reports whether s is a well-formed email address.
func ValidEmail(s string) bool {
	return validate.Var(s, "email") == nil
}

// ValidURL reports whether s is a syntactically valid absolute URL.
func ValidURL(s string) bool {
	return validate.Var(s, "url") == nil
}

// ParseDatetime parses an appointment time. RFC3339 is the wire format;
// a bare "2006-01-02 15:04:05" is accepted for older clients.
func ParseDatetime(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse("2006-01-02T15:04", s); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}
