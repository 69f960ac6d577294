package formvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type (
	// Rule is the interface that all validation rules must implement.
	// Validate returns nil when v passes, otherwise an error whose message is
	// shown to the user. Describe documents the rule on an OpenAPI schema.
	Rule interface {
		Validate(v Value) error
		Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
	}

	// CustomFunc inspects a raw value and returns a message and true when the
	// value is invalid.
	CustomFunc func(v Value) (string, bool)

	// Serializer transforms a field value for submission. Returning false
	// omits the field from the serialized payload.
	Serializer func(v Value) (Value, bool)

	// TypeKind selects the format checked by [Validator.TypeCheck].
	TypeKind string
)

const (
	TypeEmail   TypeKind = "email"
	TypeNumeric TypeKind = "numeric"
	TypeInteger TypeKind = "integer"
	TypeDecimal TypeKind = "decimal"
)
