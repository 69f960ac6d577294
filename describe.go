package formvalidation

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// docRule only documents; it never fails.
type docRule struct {
	apply func(ref *openapi3.SchemaRef)
}

func (r docRule) Validate(Value) error { return nil }

func (r docRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	r.apply(ref)
	return nil
}

// Describe returns a documentation-only rule that appends desc to the schema description.
func Describe(desc string) Rule {
	return docRule{func(ref *openapi3.SchemaRef) {
		if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
			ref.Value.Description += " "
		}
		ref.Value.Description += desc
	}}
}

// Example returns a documentation-only rule that sets the schema example value.
func Example(ex Value) Rule {
	return docRule{func(ref *openapi3.SchemaRef) {
		ref.Value.Example = ex.Native()
	}}
}

// Deprecate returns a documentation-only rule that marks the field as deprecated in the schema.
func Deprecate() Rule {
	return docRule{func(ref *openapi3.SchemaRef) {
		ref.Value.Deprecated = true
	}}
}
