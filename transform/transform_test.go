package transform_test

import (
	"strings"
	"testing"

	fv "github.com/Gobd/formvalidation"
	"github.com/Gobd/formvalidation/transform"
	"github.com/stretchr/testify/assert"
)

func TestSerializers(t *testing.T) {
	tests := []struct {
		name string
		ser  fv.Serializer
		in   fv.Value
		want fv.Value
		keep bool
	}{
		{name: "trim", ser: transform.TrimSpace, in: fv.String("  a b "), want: fv.String("a b"), keep: true},
		{name: "trim number untouched", ser: transform.TrimSpace, in: fv.Number(1), want: fv.Number(1), keep: true},
		{name: "lower", ser: transform.ToLower, in: fv.String("MiXeD"), want: fv.String("mixed"), keep: true},
		{name: "sanitize", ser: transform.Sanitize, in: fv.String("<b>Hello</b><script>x()</script>"), want: fv.String("Hello"), keep: true},
		{name: "sanitize bool untouched", ser: transform.Sanitize, in: fv.Bool(true), want: fv.Bool(true), keep: true},
		{name: "string func", ser: transform.StringFunc(strings.ToUpper), in: fv.String("up"), want: fv.String("UP"), keep: true},
		{name: "omit empty string", ser: transform.OmitEmpty, in: fv.String(""), keep: false},
		{name: "omit null", ser: transform.OmitEmpty, in: fv.Value{}, keep: false},
		{name: "keep zero number", ser: transform.OmitEmpty, in: fv.Number(0), want: fv.Number(0), keep: true},
		{name: "omit false", ser: transform.OmitFalse, in: fv.Bool(false), keep: false},
		{name: "keep true", ser: transform.OmitFalse, in: fv.Bool(true), want: fv.Bool(true), keep: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, keep := tt.ser(tt.in)
			assert.Equal(t, tt.keep, keep)
			if tt.keep {
				assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestChain(t *testing.T) {
	ser := transform.Chain(transform.TrimSpace, nil, transform.OmitEmpty, transform.ToLower)

	got, keep := ser(fv.String("  HeLLo "))
	assert.True(t, keep)
	assert.Equal(t, fv.String("hello"), got)

	_, keep = ser(fv.String("   "))
	assert.False(t, keep, "whitespace trims to empty and is omitted")

	got, keep = transform.Chain()(fv.Number(3))
	assert.True(t, keep)
	assert.Equal(t, fv.Number(3), got)
}

func TestChain_InModel(t *testing.T) {
	m := fv.NewModel()
	m.RegisterField("email", fv.NewFieldSchema("email", fv.String("")).
		WithSerializer(transform.Chain(transform.TrimSpace, transform.ToLower)))
	m.RegisterField("nickname", fv.NewFieldSchema("nickname", fv.String("")).
		WithSerializer(transform.OmitEmpty))
	m.SetValue("email", fv.String(" Ada@Example.COM "))

	assert.Equal(t, map[string]fv.Value{"email": fv.String("ada@example.com")}, m.SerializeAll())
}
