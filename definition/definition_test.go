package definition_test

import (
	"os"
	"path/filepath"
	"testing"

	fv "github.com/Gobd/formvalidation"
	"github.com/Gobd/formvalidation/definition"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const signupYAML = `
fields:
  - key: email
    label: Email
    serialize: [trim, lower]
    rules:
      - {type: required, message: Required}
      - {type: email, message: Bad email}
  - key: age
    kind: number
    default: 18
  - key: terms
    kind: checkbox
    rules:
      - {type: required, message: never}
  - key: plan
    kind: select
    options: [free, pro]
    default: free
  - key: code
    default: ""
    serialize: [omitEmpty]
    rules:
      - {type: pattern, pattern: "^[A-Z]{3}$", message: Three capitals}
`

const signupJSON = `{
  "fields": [
    {"key": "email", "label": "Email", "serialize": ["trim", "lower"],
     "rules": [{"type": "required", "message": "Required"}, {"type": "email", "message": "Bad email"}]},
    {"key": "age", "kind": "number", "default": 18},
    {"key": "terms", "kind": "checkbox", "rules": [{"type": "required", "message": "never"}]},
    {"key": "plan", "kind": "select", "options": ["free", "pro"], "default": "free"},
    {"key": "code", "default": "", "serialize": ["omitEmpty"],
     "rules": [{"type": "pattern", "pattern": "^[A-Z]{3}$", "message": "Three capitals"}]}
  ]
}`

const signupHCL = `
field "email" {
  label     = "Email"
  serialize = ["trim", "lower"]

  rule "required" { message = "Required" }
  rule "email" { message = "Bad email" }
}

field "age" {
  kind    = "number"
  default = 18
}

field "terms" {
  kind = "checkbox"
  rule "required" { message = "never" }
}

field "plan" {
  kind    = "select"
  options = ["free", "pro"]
  default = "free"
}

field "code" {
  default   = ""
  serialize = ["omitEmpty"]
  rule "pattern" {
    pattern = "^[A-Z]{3}$"
    message = "Three capitals"
  }
}
`

func parsers() map[string]func() (*definition.Definition, error) {
	return map[string]func() (*definition.Definition, error){
		"yaml": func() (*definition.Definition, error) { return definition.ParseYAML([]byte(signupYAML)) },
		"json": func() (*definition.Definition, error) { return definition.ParseJSON([]byte(signupJSON)) },
		"hcl":  func() (*definition.Definition, error) { return definition.ParseHCL([]byte(signupHCL), "signup.hcl") },
	}
}

// normalizeDefaults maps decoded defaults onto their Value representation,
// since numeric literals decode to different Go types per format.
func normalizeDefaults(d *definition.Definition) {
	for i := range d.Fields {
		d.Fields[i].Default = fv.ValueOf(d.Fields[i].Default).Native()
	}
}

func TestParse_Equivalent(t *testing.T) {
	want, err := definition.ParseYAML([]byte(signupYAML))
	require.NoError(t, err)
	normalizeDefaults(want)

	for name, parse := range parsers() {
		t.Run(name, func(t *testing.T) {
			def, err := parse()
			require.NoError(t, err)
			require.Len(t, def.Fields, 5)

			normalizeDefaults(def)
			if diff := cmp.Diff(want, def); diff != "" {
				t.Errorf("definition mismatch (-yaml +%s):\n%s", name, diff)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	for name, parse := range parsers() {
		t.Run(name, func(t *testing.T) {
			def, err := parse()
			require.NoError(t, err)
			form, err := def.Build()
			require.NoError(t, err)

			assert.Equal(t, []string{"email", "age", "terms", "plan", "code"}, form.IDs())
			plan, ok := form.Lookup("plan")
			require.True(t, ok)
			assert.Equal(t, fv.ElementSelect, plan.Kind)
			assert.Equal(t, []string{"free", "pro"}, plan.Options)

			m := fv.NewModel()
			form.Mount(m)

			assert.Equal(t, "Required", m.Error("email"))
			assert.Equal(t, "never", m.Error("terms"), "required fails for booleans")
			assert.Equal(t, "Three capitals", m.Error("code"))

			m.SetValue("email", fv.String("  Ada@Example.com "))
			assert.Equal(t, "Bad email", m.Error("email"), "validation sees the raw value")
			m.SetValue("email", fv.String("Ada@Example.com"))
			assert.Empty(t, m.Error("email"))
			m.SetValue("code", fv.String("ABC"))
			assert.Empty(t, m.Error("code"))

			out := m.SerializeAll()
			assert.Equal(t, fv.String("ada@example.com"), out["email"])
			assert.Equal(t, fv.Number(18), out["age"])
			assert.Equal(t, fv.Bool(false), out["terms"])
			assert.Equal(t, fv.String("free"), out["plan"])
			assert.Equal(t, fv.String("ABC"), out["code"])

			m.SetValue("code", fv.String(""))
			assert.NotContains(t, m.SerializeAll(), "code")
		})
	}
}

func TestBuild_BlobDefault(t *testing.T) {
	def, err := definition.ParseYAML([]byte(`
fields:
  - key: address
    kind: blob
    default: {street: Main, city: Oslo}
`))
	require.NoError(t, err)
	form, err := def.Build()
	require.NoError(t, err)

	e, _ := form.Lookup("address")
	blob, ok := e.Field.Default.Blob()
	require.True(t, ok)
	assert.Equal(t, map[string]any{"street": "Main", "city": "Oslo"}, blob)
}

func TestInvalidDefinitions(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		errStr string
	}{
		{
			name:   "no fields",
			yaml:   `fields: []`,
			errStr: "definition: fields: cannot be blank.",
		},
		{
			name:   "missing key",
			yaml:   "fields:\n  - label: x",
			errStr: "definition: fields: (0: (key: cannot be blank.).).",
		},
		{
			name:   "unknown kind",
			yaml:   "fields:\n  - {key: a, kind: slider}",
			errStr: "definition: fields: (0: (kind: must be a valid value.).).",
		},
		{
			name:   "select without options",
			yaml:   "fields:\n  - {key: a, kind: select}",
			errStr: "definition: fields: (0: (options: cannot be blank.).).",
		},
		{
			name:   "unknown rule",
			yaml:   "fields:\n  - {key: a, rules: [{type: uuid, message: x}]}",
			errStr: "definition: fields: (0: (rules: (0: (type: must be a valid value.).).).).",
		},
		{
			name:   "unknown serializer",
			yaml:   "fields:\n  - {key: a, serialize: [upper]}",
			errStr: `definition: fields: (0: (serialize: (0: unknown serializer "upper".).).).`,
		},
		{
			name:   "bad pattern",
			yaml:   "fields:\n  - {key: a, rules: [{type: pattern, pattern: '[', message: x}]}",
			errStr: "definition: fields: (0: (rules: (0: (pattern: error parsing regexp: missing closing ]: `[`.).).).).",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := definition.ParseYAML([]byte(tt.yaml))
			require.Error(t, err)
			assert.Equal(t, tt.errStr, err.Error())
		})
	}
}

func TestBuild_DefaultKindMismatch(t *testing.T) {
	tests := []struct {
		name   string
		field  definition.FieldDef
		errStr string
	}{
		{"text", definition.FieldDef{Key: "a", Default: 5}, "field a: default must be a string, got number"},
		{"number", definition.FieldDef{Key: "b", Kind: fv.ElementNumber, Default: "x"}, "field b: default must be a number, got string"},
		{"checkbox", definition.FieldDef{Key: "c", Kind: fv.ElementCheckbox, Default: "yes"}, "field c: default must be a bool, got string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := definition.Definition{Fields: []definition.FieldDef{tt.field}}.Build()
			require.Error(t, err)
			assert.Equal(t, tt.errStr, err.Error())
		})
	}
}

func TestParseHCL_SyntaxError(t *testing.T) {
	_, err := definition.ParseHCL([]byte(`field "a" {`), "broken.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "definition: parse hcl broken.hcl")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"signup.yaml": signupYAML,
		"signup.yml":  signupYAML,
		"signup.json": signupJSON,
		"signup.hcl":  signupHCL,
	}
	for name, body := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		def, err := definition.Load(path)
		require.NoError(t, err, name)
		assert.Len(t, def.Fields, 5, name)
	}

	txt := filepath.Join(dir, "signup.txt")
	require.NoError(t, os.WriteFile(txt, []byte(signupYAML), 0o600))
	_, err := definition.Load(txt)
	assert.EqualError(t, err, `definition: unsupported file type ".txt"`)

	_, err = definition.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestBuild_InAndAlphaRules(t *testing.T) {
	def, err := definition.ParseYAML([]byte(`
fields:
  - key: tier
    options: [basic, plus]
    rules:
      - {type: in, message: Unknown tier}
  - key: name
    rules:
      - {type: alpha, message: Needs a letter}
`))
	require.NoError(t, err)
	form, err := def.Build()
	require.NoError(t, err)

	m := fv.NewModel()
	form.Mount(m)
	assert.True(t, m.IsValid(), "empty values pass both rules")

	m.SetValue("tier", fv.String("gold"))
	m.SetValue("name", fv.String("42"))
	assert.Equal(t, "Unknown tier", m.Error("tier"))
	assert.Equal(t, "Needs a letter", m.Error("name"))

	m.SetValue("tier", fv.String("plus"))
	m.SetValue("name", fv.String("R2D2"))
	assert.True(t, m.IsValid())
}

func TestValidate_InRuleNeedsOptions(t *testing.T) {
	_, err := definition.ParseYAML([]byte("fields:\n  - {key: a, rules: [{type: in, message: x}]}"))
	assert.EqualError(t, err, "definition: fields: (0: (options: cannot be blank.).).")
}
