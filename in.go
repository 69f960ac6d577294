package formvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// In returns a rule that accepts only strings found in options. The empty
// string is accepted so that an untouched select stays a [Required] concern.
func In(msg string, options ...string) Rule {
	values := make([]any, len(options))
	for i, o := range options {
		values[i] = o
	}
	return inRule{
		InRule: validation.In(values...).ErrorObject(validation.NewError("validation_in_invalid", msg)),
		values: values,
	}
}

type inRule struct {
	validation.InRule
	values []any
}

func (r inRule) Validate(v Value) error {
	s, ok := v.Str()
	if !ok {
		return r.InRule.Validate(v.Native())
	}
	return r.InRule.Validate(s)
}

func (r inRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Enum = r.values
	return nil
}
