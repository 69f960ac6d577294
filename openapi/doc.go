// Package openapi generates OpenAPI 3 documents describing form submission
// endpoints. Request and response bodies are derived from
// [formvalidation.FormSchema] values, with each field's validators
// documented on its property.
//
// Use [DocBase] to create a base document and register endpoints with
// [Post], [Put] or [Patch]:
//
//	doc := openapi.DocBase("signup", "Signup service", "1.0")
//	openapi.Post(doc, "/signup", "submitSignup", openapi.Endpoint{
//	    Form: signupForm,
//	    Responses: map[string]openapi.Response{"204": {Desc: "accepted"}},
//	})
package openapi
