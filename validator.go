package formvalidation

import (
	"errors"
	"regexp"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validator is an ordered chain of rules. Rules are appended through the
// builder methods, each of which returns the receiver:
//
//	v := NewValidator().Required("Required").MinLength(3, "Too short")
//
// A *Validator also satisfies ozzo-validation's [validation.Rule].
type Validator struct {
	rules []Rule
}

var _ validation.Rule = (*Validator)(nil)

// NewValidator returns an empty Validator, which accepts every value.
func NewValidator() *Validator {
	return &Validator{}
}

// Rule appends r.
func (v *Validator) Rule(r Rule) *Validator {
	v.rules = append(v.rules, r)
	return v
}

// Required appends a [Required] rule.
func (v *Validator) Required(msg string) *Validator {
	return v.Rule(Required(msg))
}

// MinLength appends a [MinLength] rule.
func (v *Validator) MinLength(n int, msg string) *Validator {
	return v.Rule(MinLength(n, msg))
}

// MaxLength appends a [MaxLength] rule.
func (v *Validator) MaxLength(n int, msg string) *Validator {
	return v.Rule(MaxLength(n, msg))
}

// TypeCheck appends a [TypeCheck] rule.
func (v *Validator) TypeCheck(kind TypeKind, msg string) *Validator {
	return v.Rule(TypeCheck(kind, msg))
}

// Pattern appends a [Pattern] rule.
func (v *Validator) Pattern(re *regexp.Regexp, msg string) *Validator {
	return v.Rule(Pattern(re, msg))
}

// PatternString compiles expr and appends a [Pattern] rule. It panics if
// expr is not a valid regular expression.
func (v *Validator) PatternString(expr, msg string) *Validator {
	return v.Rule(Pattern(regexp.MustCompile(expr), msg))
}

// In appends an [In] rule.
func (v *Validator) In(msg string, options ...string) *Validator {
	return v.Rule(In(msg, options...))
}

// HasAlphabetic appends a [HasAlphabetic] rule.
func (v *Validator) HasAlphabetic(msg string) *Validator {
	return v.Rule(HasAlphabetic(msg))
}

// Custom appends a [Custom] rule without documentation.
func (v *Validator) Custom(f CustomFunc) *Validator {
	return v.Rule(Custom(f, ""))
}

// Rules returns a copy of the rule chain.
func (v *Validator) Rules() []Rule {
	if v == nil {
		return nil
	}
	return append([]Rule(nil), v.rules...)
}

// Validate runs the rules in append order against value, converted with
// [ValueOf], and returns the error of the first rule that fails.
func (v *Validator) Validate(value any) error {
	if v == nil {
		return nil
	}
	val := ValueOf(value)
	for _, r := range v.rules {
		if err := r.Validate(val); err != nil {
			return err
		}
	}
	return nil
}

// Message is like Validate but returns only the failure message, or "".
func (v *Validator) Message(value any) string {
	return Message(v.Validate(value))
}

// Describe applies each rule's documentation to the schema property.
func (v *Validator) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if v == nil {
		return nil
	}
	for _, r := range v.rules {
		if err := r.Describe(name, schema, ref); err != nil {
			return err
		}
	}
	return nil
}

// Message extracts the user-facing message from a rule error. ozzo errors
// yield their bare message; nil yields "".
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ve validation.Error
	if errors.As(err, &ve) {
		return ve.Message()
	}
	return err.Error()
}
