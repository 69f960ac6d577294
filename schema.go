package formvalidation

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// NewSchemaRefForForm generates an OpenAPI object schema describing the
// payload a form submits. Each element becomes a property typed after its
// default value, and every validator rule documents itself on it. For
// duplicate ids the last element wins.
func NewSchemaRefForForm(form *FormSchema) (*openapi3.SchemaRef, error) {
	schema := openapi3.NewObjectSchema()
	for _, e := range form.Elements() {
		ref, err := newSchemaRefForElement(e)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", e.ID, err)
		}
		delete(schema.Properties, e.ID)
		schema.Required = removeName(schema.Required, e.ID)
		schema.Properties[e.ID] = ref
		if e.Field == nil {
			continue
		}
		for _, v := range e.Field.Validators {
			if err := v.Describe(e.ID, schema, ref); err != nil {
				return nil, fmt.Errorf("field %s: %w", e.ID, err)
			}
		}
	}
	return openapi3.NewSchemaRef("", schema), nil
}

func newSchemaRefForElement(e Element) (*openapi3.SchemaRef, error) {
	if e.Field == nil {
		return openapi3.NewSchemaRef("", openapi3.NewSchema()), nil
	}
	ref, err := schemaRefForValue(e.Field.Default)
	if err != nil {
		return nil, err
	}
	s := ref.Value
	s.Title = e.Field.Label
	s.Description = e.Field.Description
	if !e.Field.Default.IsNull() && e.Field.Default.Kind() != KindBlob {
		s.Default = e.Field.Default.Native()
	}
	for _, o := range e.Options {
		s.Enum = append(s.Enum, o)
	}
	return ref, nil
}

func schemaRefForValue(v Value) (*openapi3.SchemaRef, error) {
	switch v.Kind() {
	case KindString:
		return openapi3.NewSchemaRef("", openapi3.NewStringSchema()), nil
	case KindBool:
		return openapi3.NewSchemaRef("", openapi3.NewBoolSchema()), nil
	case KindNumber:
		return openapi3.NewSchemaRef("", openapi3.NewFloat64Schema()), nil
	case KindBlob:
		blob, _ := v.Blob()
		return openapi3gen.NewSchemaRefForValue(blob, nil)
	default:
		return openapi3.NewSchemaRef("", openapi3.NewSchema()), nil
	}
}

func removeName(names []string, name string) []string {
	out := names[:0]
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}
