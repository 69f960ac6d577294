package formvalidation_test

import (
	"testing"

	v "github.com/Gobd/formvalidation"
	"github.com/stretchr/testify/assert"
)

func TestHasAlphabetic(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		errStr string
	}{
		{
			name:   "alpha",
			in:     "1234-1234 \nabc",
			errStr: "",
		},
		{
			name:   "empty", // Allow when not required
			in:     "",
			errStr: "",
		},
		{
			name:   "non alpha",
			in:     "1234-1234 \n",
			errStr: "needs a letter",
		},
		{
			name:   "wrong type",
			in:     1234,
			errStr: "needs a letter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.errStr, v.NewValidator().HasAlphabetic("needs a letter").Message(tt.in))
		})
	}
}

func TestIn(t *testing.T) {
	plan := v.NewValidator().In("Pick a plan", "free", "pro")

	tests := []struct {
		name   string
		in     any
		errStr string
	}{
		{name: "listed", in: "pro", errStr: ""},
		{name: "unlisted", in: "gold", errStr: "Pick a plan"},
		{name: "case sensitive", in: "Pro", errStr: "Pick a plan"},
		{name: "empty passes", in: "", errStr: ""},
		{name: "null passes", in: nil, errStr: ""},
		{name: "number", in: 7, errStr: "Pick a plan"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.errStr, plan.Message(tt.in))
		})
	}
}
