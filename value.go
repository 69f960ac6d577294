package formvalidation

import (
	"fmt"
	"reflect"
	"strconv"

	json "github.com/goccy/go-json"
)

// Kind identifies which member of the [Value] sum type is set.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindBool
	KindNumber
	KindBlob
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindBlob:
		return "blob"
	default:
		return "null"
	}
}

// Value is a field value: exactly one of string, bool, number or an opaque
// Go value (blob). The zero Value is null.
type Value struct {
	kind Kind
	str  string
	b    bool
	num  float64
	blob any
}

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a numeric Value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Blob wraps an arbitrary Go value. A nil c yields the null Value.
func Blob(c any) Value {
	if c == nil {
		return Value{}
	}
	return Value{kind: KindBlob, blob: c}
}

// ValueOf maps a raw Go value onto the sum type. Strings, booleans and all
// numeric kinds get their own member, a Value is returned unchanged, nil and
// nil pointers become null, and anything else is wrapped as a Blob.
func ValueOf(a any) Value {
	switch t := a.(type) {
	case nil:
		return Value{}
	case Value:
		return t
	case *Value:
		if t == nil {
			return Value{}
		}
		return *t
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case float64:
		return Number(t)
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return Number(f)
		}
		return String(t.String())
	}

	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float())
	case reflect.String:
		return String(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return Value{}
		}
	}
	return Blob(a)
}

// Kind reports which member is set.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v holds no value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Str returns the string member and whether v is a string.
func (v Value) Str() (string, bool) { return v.str, v.kind == KindString }

// Boolean returns the boolean member and whether v is a bool.
func (v Value) Boolean() (bool, bool) { return v.b, v.kind == KindBool }

// Float returns the numeric member and whether v is a number.
func (v Value) Float() (float64, bool) { return v.num, v.kind == KindNumber }

// Blob returns the blob member and whether v is a blob.
func (v Value) Blob() (any, bool) { return v.blob, v.kind == KindBlob }

// Native returns the underlying Go value, or nil for null.
func (v Value) Native() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindBlob:
		return v.blob
	default:
		return nil
	}
}

// Equal reports whether v and o hold the same member and value. Blob
// members are compared with reflect.DeepEqual.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindBool:
		return v.b == o.b
	case KindNumber:
		return v.num == o.num
	case KindBlob:
		return reflect.DeepEqual(v.blob, o.blob)
	default:
		return true
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBlob:
		return fmt.Sprint(v.blob)
	default:
		return ""
	}
}

// MarshalJSON encodes v as its native value.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Native())
}

// UnmarshalJSON decodes any JSON value. Objects and arrays become blobs.
func (v *Value) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*v = ValueOf(raw)
	return nil
}
