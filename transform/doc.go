// Package transform provides [formvalidation.Serializer] functions that
// normalise or omit field values when a form is serialized for submission.
// Combine them with [Chain]:
//
//	field.WithSerializer(transform.Chain(transform.TrimSpace, transform.OmitEmpty))
package transform
