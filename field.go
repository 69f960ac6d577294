package formvalidation

// FieldSchema is the metadata registered for one field: its key, default
// value, validators and an optional serializer.
type FieldSchema struct {
	Key         string
	Label       string
	Description string
	Default     Value
	Validators  []*Validator
	Serializer  Serializer
}

// NewFieldSchema creates a FieldSchema with the given default and validators.
func NewFieldSchema(key string, def Value, validators ...*Validator) *FieldSchema {
	return &FieldSchema{
		Key:        key,
		Default:    def,
		Validators: validators,
	}
}

// WithSerializer sets the serializer used by Serialize.
func (f *FieldSchema) WithSerializer(s Serializer) *FieldSchema {
	f.Serializer = s
	return f
}

// WithLabel sets a human-readable label.
func (f *FieldSchema) WithLabel(label string) *FieldSchema {
	f.Label = label
	return f
}

// WithDescription sets a description used in documentation and prompts.
func (f *FieldSchema) WithDescription(desc string) *FieldSchema {
	f.Description = desc
	return f
}

// Validate runs the validators in order and returns the first failure.
func (f *FieldSchema) Validate(v Value) error {
	if f == nil {
		return nil
	}
	for _, val := range f.Validators {
		if err := val.Validate(v); err != nil {
			return err
		}
	}
	return nil
}

// Serialize returns the value to submit for v. Without a serializer v is
// returned unchanged; false means the field is left out.
func (f *FieldSchema) Serialize(v Value) (Value, bool) {
	if f == nil || f.Serializer == nil {
		return v, true
	}
	return f.Serializer(v)
}
