package formvalidation

import (
	"unicode/utf8"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type lengthRule struct {
	n   int
	min bool
	err validation.Error
}

// MinLength returns a rule that checks a string has at least n characters.
// Non-string values fail.
func MinLength(n int, msg string) Rule {
	return lengthRule{n, true, validation.NewError("validation_length_too_short", msg)}
}

// MaxLength returns a rule that checks a string has at most n characters.
// Non-string values fail.
func MaxLength(n int, msg string) Rule {
	return lengthRule{n, false, validation.NewError("validation_length_too_long", msg)}
}

func (r lengthRule) Validate(v Value) error {
	s, ok := v.Str()
	if !ok {
		return r.err
	}
	l := utf8.RuneCountInString(s)
	if r.min && l < r.n || !r.min && l > r.n {
		return r.err
	}
	return nil
}

func (r lengthRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if r.n < 0 {
		return nil
	}
	n := uint64(r.n)
	if r.min {
		ref.Value.MinLength = n
	} else {
		ref.Value.MaxLength = &n
	}
	return nil
}
