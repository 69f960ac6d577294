package openapi

import (
	fv "github.com/Gobd/formvalidation"
	"github.com/getkin/kin-openapi/openapi3"
)

// NewSchemaRefForForm generates the OpenAPI schema of a form's submission
// payload. See [formvalidation.NewSchemaRefForForm].
func NewSchemaRefForForm(form *fv.FormSchema) (*openapi3.SchemaRef, error) {
	return fv.NewSchemaRefForForm(form)
}
