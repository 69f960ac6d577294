package formvalidation

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type custom struct {
	f    CustomFunc
	desc string
}

// Custom returns a rule that delegates to f with the raw value. desc is used
// for documentation only and may be empty.
func Custom(f CustomFunc, desc string) Rule {
	return custom{
		f:    f,
		desc: desc,
	}
}

func (r custom) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if r.desc == "" {
		return nil
	}
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += r.desc
	return nil
}

func (r custom) Validate(v Value) error {
	if r.f == nil {
		return nil
	}
	if msg, bad := r.f(v); bad {
		return validation.NewError("validation_custom", msg)
	}
	return nil
}
