package definition

import (
	"fmt"
	"regexp"

	fv "github.com/Gobd/formvalidation"
	"github.com/Gobd/formvalidation/transform"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ElementBlob is the kind of fields holding an opaque structured value.
const ElementBlob = "blob"

// Rule types accepted in a [RuleDef].
const (
	RuleRequired  = "required"
	RuleMinLength = "minLength"
	RuleMaxLength = "maxLength"
	RuleEmail     = "email"
	RuleNumeric   = "numeric"
	RuleInteger   = "integer"
	RuleDecimal   = "decimal"
	RulePattern   = "pattern"
	RuleIn        = "in"
	RuleAlpha     = "alpha"
)

// Serializer names accepted in [FieldDef.Serialize].
const (
	SerializeTrim      = "trim"
	SerializeLower     = "lower"
	SerializeSanitize  = "sanitize"
	SerializeOmitEmpty = "omitEmpty"
	SerializeOmitFalse = "omitFalse"
)

var (
	kinds = []any{fv.ElementText, fv.ElementCheckbox, fv.ElementNumber, fv.ElementSelect, ElementBlob}

	ruleTypes = []any{
		RuleRequired, RuleMinLength, RuleMaxLength, RuleEmail,
		RuleNumeric, RuleInteger, RuleDecimal, RulePattern, RuleIn, RuleAlpha,
	}

	serializers = map[string]fv.Serializer{
		SerializeTrim:      transform.TrimSpace,
		SerializeLower:     transform.ToLower,
		SerializeSanitize:  transform.Sanitize,
		SerializeOmitEmpty: transform.OmitEmpty,
		SerializeOmitFalse: transform.OmitFalse,
	}
)

// Definition is the declarative form of a [fv.FormSchema].
type Definition struct {
	Fields []FieldDef `json:"fields" yaml:"fields"`
}

// FieldDef declares one field. Kind defaults to text.
type FieldDef struct {
	Key         string    `json:"key" yaml:"key"`
	Kind        string    `json:"kind,omitempty" yaml:"kind,omitempty"`
	Label       string    `json:"label,omitempty" yaml:"label,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Default     any       `json:"default,omitempty" yaml:"default,omitempty"`
	Options     []string  `json:"options,omitempty" yaml:"options,omitempty"`
	Rules       []RuleDef `json:"rules,omitempty" yaml:"rules,omitempty"`
	Serialize   []string  `json:"serialize,omitempty" yaml:"serialize,omitempty"`
}

// RuleDef declares one validation rule. Length applies to minLength and
// maxLength, Pattern to pattern. An in rule checks against the field's
// Options.
type RuleDef struct {
	Type    string `json:"type" yaml:"type"`
	Message string `json:"message" yaml:"message"`
	Length  int    `json:"length,omitempty" yaml:"length,omitempty"`
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// Validate checks the definition is well formed.
func (d Definition) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Fields, validation.Required),
	)
}

// Validate checks the field declaration is well formed.
func (f FieldDef) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Key, validation.Required),
		validation.Field(&f.Kind, validation.In(kinds...)),
		validation.Field(&f.Options, validation.When(f.Kind == fv.ElementSelect || f.hasRule(RuleIn), validation.Required)),
		validation.Field(&f.Rules),
		validation.Field(&f.Serialize, validation.Each(validation.By(knownSerializer))),
	)
}

// Validate checks the rule declaration is well formed.
func (r RuleDef) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type, validation.Required, validation.In(ruleTypes...)),
		validation.Field(&r.Length, validation.Min(0)),
		validation.Field(&r.Pattern,
			validation.When(r.Type == RulePattern, validation.Required, validation.By(compiles))),
	)
}

func (f FieldDef) hasRule(typ string) bool {
	for _, r := range f.Rules {
		if r.Type == typ {
			return true
		}
	}
	return false
}

func knownSerializer(value any) error {
	name, _ := value.(string)
	if _, ok := serializers[name]; !ok {
		return fmt.Errorf("unknown serializer %q", name)
	}
	return nil
}

func compiles(value any) error {
	s, _ := value.(string)
	_, err := regexp.Compile(s)
	return err
}

// Build validates d and turns it into a FormSchema. Fields keep their
// declared order.
func (d Definition) Build() (*fv.FormSchema, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	elements := make([]fv.Elementer, 0, len(d.Fields))
	for _, f := range d.Fields {
		e, err := f.element()
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Key, err)
		}
		elements = append(elements, e)
	}
	return fv.NewFormSchema(elements...), nil
}

func (f FieldDef) element() (fv.Element, error) {
	kind := f.Kind
	if kind == "" {
		kind = fv.ElementText
	}
	def, err := defaultValue(kind, f.Default)
	if err != nil {
		return fv.Element{}, err
	}

	v := fv.NewValidator()
	for _, r := range f.Rules {
		rule, err := r.rule(f.Options)
		if err != nil {
			return fv.Element{}, err
		}
		v.Rule(rule)
	}

	fs := fv.NewFieldSchema(f.Key, def, v).
		WithLabel(f.Label).
		WithDescription(f.Description)
	if len(f.Serialize) > 0 {
		chain := make([]fv.Serializer, len(f.Serialize))
		for i, name := range f.Serialize {
			chain[i] = serializers[name]
		}
		fs.WithSerializer(transform.Chain(chain...))
	}

	return fv.Element{
		ID:      f.Key,
		Kind:    kind,
		Options: append([]string(nil), f.Options...),
		Field:   fs,
	}, nil
}

func (r RuleDef) rule(options []string) (fv.Rule, error) {
	switch r.Type {
	case RuleRequired:
		return fv.Required(r.Message), nil
	case RuleMinLength:
		return fv.MinLength(r.Length, r.Message), nil
	case RuleMaxLength:
		return fv.MaxLength(r.Length, r.Message), nil
	case RuleEmail:
		return fv.TypeCheck(fv.TypeEmail, r.Message), nil
	case RuleNumeric:
		return fv.TypeCheck(fv.TypeNumeric, r.Message), nil
	case RuleInteger:
		return fv.TypeCheck(fv.TypeInteger, r.Message), nil
	case RuleDecimal:
		return fv.TypeCheck(fv.TypeDecimal, r.Message), nil
	case RulePattern:
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", r.Type, err)
		}
		return fv.Pattern(re, r.Message), nil
	case RuleIn:
		return fv.In(r.Message, options...), nil
	case RuleAlpha:
		return fv.HasAlphabetic(r.Message), nil
	}
	return nil, fmt.Errorf("unknown rule type %q", r.Type)
}

// defaultValue converts a decoded default to the Value kind the element
// kind expects. A missing default becomes the kind's zero value.
func defaultValue(kind string, raw any) (fv.Value, error) {
	v := fv.ValueOf(raw)
	switch kind {
	case ElementBlob:
		if v.IsNull() {
			return v, nil
		}
		return fv.Blob(v.Native()), nil
	case fv.ElementCheckbox:
		if v.IsNull() {
			return fv.Bool(false), nil
		}
		if v.Kind() != fv.KindBool {
			return fv.Value{}, fmt.Errorf("default must be a bool, got %s", v.Kind())
		}
	case fv.ElementNumber:
		if v.IsNull() {
			return fv.Number(0), nil
		}
		if v.Kind() != fv.KindNumber {
			return fv.Value{}, fmt.Errorf("default must be a number, got %s", v.Kind())
		}
	default:
		if v.IsNull() {
			return fv.String(""), nil
		}
		if v.Kind() != fv.KindString {
			return fv.Value{}, fmt.Errorf("default must be a string, got %s", v.Kind())
		}
	}
	return v, nil
}
