package openapi

import (
	"errors"
	"net/http"

	fv "github.com/Gobd/formvalidation"
	"github.com/getkin/kin-openapi/openapi3"
)

// Response describes an HTTP response with a description and the forms
// whose payloads may be returned.
type Response struct {
	Desc  string
	Forms []*fv.FormSchema
}

// Endpoint describes a form submission operation for [Post], [Put] and
// [Patch].
type Endpoint struct {
	Summary     string
	Description string
	Form        *fv.FormSchema      // single submitted form (convenience)
	Forms       []*fv.FormSchema    // alternative submitted forms (oneOf)
	Responses   map[string]Response // status code to response
}

// NewRequestMust is like [NewRequest] but panics on error.
func NewRequestMust(forms ...*fv.FormSchema) *openapi3.RequestBodyRef {
	o, err := NewRequest(forms...)
	if err != nil {
		panic(err)
	}
	return o
}

// NewRequest generates a JSON request body accepting the payload of any of
// the given forms.
func NewRequest(forms ...*fv.FormSchema) (*openapi3.RequestBodyRef, error) {
	if len(forms) == 0 {
		return nil, errors.New("no forms given")
	}

	refs, err := schemaRefs(forms)
	if err != nil {
		return nil, err
	}

	return &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().
			WithRequired(true).
			WithContent(jsonContent(refs)),
	}, nil
}

// NewResponseMust is like [NewResponse] but panics on error.
// Map key is status code (e.g. "200", "4xx").
func NewResponseMust(vs map[string]Response) *openapi3.Responses {
	o, err := NewResponse(vs)
	if err != nil {
		panic(err)
	}
	return o
}

// NewResponse creates an OpenAPI responses object.
// Map key is status code (e.g. "200", "4xx").
func NewResponse(vs map[string]Response) (*openapi3.Responses, error) {
	if len(vs) == 0 {
		return nil, errors.New("no values given")
	}

	opts := make([]openapi3.NewResponsesOption, 0, len(vs))
	for statusCode, resp := range vs {
		desc := resp.Desc
		r := &openapi3.Response{Description: &desc}
		if len(resp.Forms) > 0 {
			refs, err := schemaRefs(resp.Forms)
			if err != nil {
				return nil, err
			}
			r.Content = jsonContent(refs)
		}
		opts = append(opts, openapi3.WithName(statusCode, r))
	}

	return openapi3.NewResponses(opts...), nil
}

func schemaRefs(forms []*fv.FormSchema) (openapi3.SchemaRefs, error) {
	refs := make(openapi3.SchemaRefs, 0, len(forms))
	for _, f := range forms {
		ref, err := NewSchemaRefForForm(f)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// jsonContent wraps refs as application/json, using oneOf for alternatives.
func jsonContent(refs openapi3.SchemaRefs) openapi3.Content {
	if len(refs) == 1 {
		return openapi3.NewContentWithJSONSchemaRef(refs[0])
	}
	return openapi3.NewContentWithJSONSchema(&openapi3.Schema{OneOf: refs})
}

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: &openapi3.Paths{},
	}
}

// AddPath adds an operation to the OpenAPI document at the given path and method.
func AddPath(path, method string, s *openapi3.T, op *openapi3.Operation) {
	p := s.Paths.Value(path)
	if p == nil {
		p = &openapi3.PathItem{}
	}

	switch method {
	case http.MethodPost:
		p.Post = op
	case http.MethodPut:
		p.Put = op
	case http.MethodPatch:
		p.Patch = op
	}

	s.Paths.Set(path, p)
}

// addEndpoint builds an [openapi3.Operation] from ep and registers it at path+method.
func addEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) {
	op := &openapi3.Operation{
		OperationID: operationID,
		Summary:     ep.Summary,
		Description: ep.Description,
	}

	switch {
	case len(ep.Forms) > 0:
		op.RequestBody = NewRequestMust(ep.Forms...)
	case ep.Form != nil:
		op.RequestBody = NewRequestMust(ep.Form)
	}

	if ep.Responses != nil {
		op.Responses = NewResponseMust(ep.Responses)
	} else {
		op.Responses = openapi3.NewResponses()
	}

	AddPath(path, method, doc, op)
}

// Post registers a POST endpoint on doc.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPost, operationID, ep)
}

// Put registers a PUT endpoint on doc.
func Put(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPut, operationID, ep)
}

// Patch registers a PATCH endpoint on doc.
func Patch(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPatch, operationID, ep)
}
