package definition

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// hclFile is the top-level structure of an HCL definition:
//
//	field "email" {
//	  label     = "Email"
//	  default   = ""
//	  serialize = ["trim", "lower"]
//
//	  rule "required" { message = "Required" }
//	  rule "email"    { message = "Bad email" }
//	}
type hclFile struct {
	Fields []*hclField `hcl:"field,block"`
}

type hclField struct {
	Key         string     `hcl:"key,label"`
	Kind        string     `hcl:"kind,optional"`
	Label       string     `hcl:"label,optional"`
	Description string     `hcl:"description,optional"`
	Default     *cty.Value `hcl:"default,optional"`
	Options     []string   `hcl:"options,optional"`
	Serialize   []string   `hcl:"serialize,optional"`
	Rules       []*hclRule `hcl:"rule,block"`
}

type hclRule struct {
	Type    string `hcl:"type,label"`
	Message string `hcl:"message"`
	Length  *int   `hcl:"length,optional"`
	Pattern string `hcl:"pattern,optional"`
}

// ParseHCL decodes and validates an HCL definition. filename is only used
// in diagnostics.
func ParseHCL(data []byte, filename string) (*Definition, error) {
	f, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("definition: parse hcl %s: %w", filename, diags)
	}

	var parsed hclFile
	if diags := gohcl.DecodeBody(f.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("definition: decode hcl %s: %w", filename, diags)
	}

	d := &Definition{Fields: make([]FieldDef, 0, len(parsed.Fields))}
	for _, hf := range parsed.Fields {
		fd := FieldDef{
			Key:         hf.Key,
			Kind:        hf.Kind,
			Label:       hf.Label,
			Description: hf.Description,
			Options:     hf.Options,
			Serialize:   hf.Serialize,
		}
		if hf.Default != nil {
			def, err := ctyToNative(*hf.Default)
			if err != nil {
				return nil, fmt.Errorf("definition: field %s default: %w", hf.Key, err)
			}
			fd.Default = def
		}
		for _, hr := range hf.Rules {
			rd := RuleDef{Type: hr.Type, Message: hr.Message, Pattern: hr.Pattern}
			if hr.Length != nil {
				rd.Length = *hr.Length
			}
			fd.Rules = append(fd.Rules, rd)
		}
		d.Fields = append(d.Fields, fd)
	}
	return checked(d)
}

// ctyToNative converts a cty.Value to the Go value a YAML or JSON decoder
// would have produced for the same literal.
func ctyToNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("convert number: %w", err)
		}
		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		out := make([]any, 0, v.LengthInt())
		it := v.ElementIterator()
		for it.Next() {
			_, ev := it.Element()
			n, err := ctyToNative(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil

	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any)
		it := v.ElementIterator()
		for it.Next() {
			k, ev := it.Element()
			n, err := ctyToNative(ev)
			if err != nil {
				return nil, fmt.Errorf("in attribute '%s': %w", k.AsString(), err)
			}
			out[k.AsString()] = n
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported type %s", ty.FriendlyName())
}
