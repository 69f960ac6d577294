package transform

import (
	"strings"
	"sync"

	fv "github.com/Gobd/formvalidation"
	"github.com/microcosm-cc/bluemonday"
)

var (
	sanitizePolicyOnce sync.Once
	sanitizePolicy     *bluemonday.Policy
)

// TrimSpace runs [strings.TrimSpace] on string values.
func TrimSpace(v fv.Value) (fv.Value, bool) {
	return StringFunc(strings.TrimSpace)(v)
}

// ToLower runs [strings.ToLower] on string values.
func ToLower(v fv.Value) (fv.Value, bool) {
	return StringFunc(strings.ToLower)(v)
}

// Sanitize strips all markup from string values.
func Sanitize(v fv.Value) (fv.Value, bool) {
	return StringFunc(func(s string) string {
		return sanitizer().Sanitize(s)
	})(v)
}

// StringFunc returns a serializer applying f to string values. Other values
// pass through unchanged.
func StringFunc(f func(string) string) fv.Serializer {
	return func(v fv.Value) (fv.Value, bool) {
		if s, ok := v.Str(); ok {
			return fv.String(f(s)), true
		}
		return v, true
	}
}

// OmitEmpty leaves out null values and empty strings.
func OmitEmpty(v fv.Value) (fv.Value, bool) {
	if v.IsNull() {
		return v, false
	}
	if s, ok := v.Str(); ok && s == "" {
		return v, false
	}
	return v, true
}

// OmitFalse leaves out false booleans.
func OmitFalse(v fv.Value) (fv.Value, bool) {
	if b, ok := v.Boolean(); ok && !b {
		return v, false
	}
	return v, true
}

// Chain runs serializers in order, feeding each the previous result. The
// first one to omit the value ends the chain.
func Chain(serializers ...fv.Serializer) fv.Serializer {
	return func(v fv.Value) (fv.Value, bool) {
		for _, s := range serializers {
			if s == nil {
				continue
			}
			var ok bool
			if v, ok = s(v); !ok {
				return v, false
			}
		}
		return v, true
	}
}

func sanitizer() *bluemonday.Policy {
	sanitizePolicyOnce.Do(func() {
		sanitizePolicy = bluemonday.StrictPolicy()
	})
	return sanitizePolicy
}
