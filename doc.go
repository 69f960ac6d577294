// Package formvalidation tracks the state of an interactive form and
// validates it: per-field values, "touched" flags and validator chains, plus
// a serialization step for submission.
//
// Build validators with the fluent [Validator] API and register one
// [FieldSchema] per field in a [Model]:
//
//	m := NewModel()
//	m.RegisterField("email", NewFieldSchema("email", String(""),
//	    NewValidator().Required("Required").TypeCheck(TypeEmail, "Bad email"),
//	))
//	m.SetValue("email", String("a@b.com"))
//	m.MarkTouched("email")
//
// On submit, [Model.Submit] marks every field touched and returns either the
// serialized payload or the field errors as [validation.Errors].
//
// A [FormSchema] lists the fields of a form in order; its [Element]
// descriptors are what a presentation layer renders, choosing a renderer per
// element kind through a [Registry] it owns.
//
// Sub-packages:
//   - transform – serializers applied to values on submission
//   - definition – declarative form definitions in YAML, JSON or HCL
//   - openapi – OpenAPI 3 documents describing form submission endpoints
package formvalidation
