package formvalidation

import (
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var alphabeticRegexp = regexp.MustCompile(`[[:alpha:]]`)

type hasAlphabetic struct {
	err validation.Error
}

// HasAlphabetic returns a rule that fails for non-blank strings without a
// single letter, such as a name typed as "1234". Blank input passes.
func HasAlphabetic(msg string) Rule {
	return hasAlphabetic{err: validation.NewError("validation_has_alphabetic", msg)}
}

func (r hasAlphabetic) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += "Must contain at least one alphabetic character."
	return nil
}

func (r hasAlphabetic) Validate(v Value) error {
	s, ok := v.Str()
	if !ok {
		return r.err
	}
	s = strings.TrimSpace(s)
	if s == "" || alphabeticRegexp.MatchString(s) {
		return nil
	}
	return r.err
}
