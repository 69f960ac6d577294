package formvalidation

import (
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type typeRule struct {
	kind TypeKind
	err  validation.Error
}

// TypeCheck returns a rule that checks a string is of the given format.
// Non-string values fail, as does an unknown kind.
func TypeCheck(kind TypeKind, msg string) Rule {
	return typeRule{kind, validation.NewError("validation_is_"+string(kind), msg)}
}

func (r typeRule) Validate(v Value) error {
	s, ok := v.Str()
	if !ok || !r.check(s) {
		return r.err
	}
	return nil
}

func (r typeRule) check(s string) bool {
	switch r.kind {
	case TypeEmail:
		return isEmail(s)
	case TypeNumeric:
		return govalidator.IsNumeric(s)
	case TypeInteger:
		_, err := strconv.ParseInt(s, 10, 64)
		return err == nil
	case TypeDecimal:
		_, err := strconv.ParseFloat(s, 64)
		return err == nil
	}
	return false
}

// isEmail requires local@domain.tld: govalidator syntax plus a dotted domain.
func isEmail(s string) bool {
	if !govalidator.IsEmail(s) {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	domain := s[at+1:]
	dot := strings.LastIndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}

func (r typeRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	switch r.kind {
	case TypeEmail:
		ref.Value.Format = "email"
	case TypeNumeric:
		ref.Value.Pattern = "^[0-9]*$"
	case TypeInteger:
		ref.Value.Format = "int64"
	case TypeDecimal:
		ref.Value.Format = "float64"
	}
	return nil
}
