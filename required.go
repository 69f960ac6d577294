package formvalidation

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type requiredRule struct {
	err validation.Error
}

// Required returns a rule that fails with msg when the value, read as a
// string, is empty after trimming whitespace. Values that are not strings
// read as the empty string and therefore fail.
func Required(msg string) Rule {
	return requiredRule{validation.NewError("validation_required", msg)}
}

func (r requiredRule) Validate(v Value) error {
	s, _ := v.Str()
	if strings.TrimSpace(s) == "" {
		return r.err
	}
	return nil
}

func (r requiredRule) Describe(name string, schema *openapi3.Schema, _ *openapi3.SchemaRef) error {
	for _, n := range schema.Required {
		if n == name {
			return nil
		}
	}
	schema.Required = append(schema.Required, name)
	return nil
}
