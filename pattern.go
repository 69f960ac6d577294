package formvalidation

import (
	"regexp"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type patternRule struct {
	re  *regexp.Regexp
	err validation.Error
}

// Pattern returns a rule that checks a string matches re anywhere.
// Non-string values fail.
func Pattern(re *regexp.Regexp, msg string) Rule {
	return patternRule{re, validation.NewError("validation_match_invalid", msg)}
}

func (r patternRule) Validate(v Value) error {
	s, ok := v.Str()
	if !ok || r.re == nil || !r.re.MatchString(s) {
		return r.err
	}
	return nil
}

func (r patternRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if r.re != nil {
		ref.Value.Pattern = r.re.String()
	}
	return nil
}
