package formvalidation

// Element kinds of the built-in field types.
const (
	ElementText     = "text"
	ElementCheckbox = "checkbox"
	ElementNumber   = "number"
	ElementSelect   = "select"
)

// Element is the descriptor a presentation layer receives for one field: an
// id, the kind a renderer is chosen by, and the field's schema.
type Element struct {
	ID      string
	Kind    string
	Options []string
	Field   *FieldSchema
}

// Elementer is implemented by anything that can appear in a [FormSchema].
type Elementer interface {
	Element() Element
}

// Element implements [Elementer] so plain descriptors can be listed directly.
func (e Element) Element() Element { return e }

// FormSchema is an ordered, immutable list of elements. Ids are expected to
// be unique but this is not enforced; see [FormSchema.Lookup].
type FormSchema struct {
	elements []Element
}

// NewFormSchema builds a FormSchema from fields in order.
func NewFormSchema(fields ...Elementer) *FormSchema {
	s := &FormSchema{elements: make([]Element, 0, len(fields))}
	for _, f := range fields {
		if f == nil {
			continue
		}
		s.elements = append(s.elements, f.Element())
	}
	return s
}

// Elements returns a copy of the elements in declaration order.
func (s *FormSchema) Elements() []Element {
	if s == nil {
		return nil
	}
	return append([]Element(nil), s.elements...)
}

// IDs returns the element ids in declaration order, duplicates included.
func (s *FormSchema) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, len(s.elements))
	for i, e := range s.elements {
		ids[i] = e.ID
	}
	return ids
}

// Len returns the number of elements.
func (s *FormSchema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.elements)
}

// Lookup returns the last element with the given id, matching what Mount
// leaves registered for duplicate ids.
func (s *FormSchema) Lookup(id string) (Element, bool) {
	if s == nil {
		return Element{}, false
	}
	for i := len(s.elements) - 1; i >= 0; i-- {
		if s.elements[i].ID == id {
			return s.elements[i], true
		}
	}
	return Element{}, false
}

// Mount registers every element's schema into m in order.
func (s *FormSchema) Mount(m *Model) {
	if s == nil {
		return
	}
	for _, e := range s.elements {
		m.RegisterField(e.ID, e.Field)
	}
}

// TextField is a free-text input.
type TextField struct {
	Key        string
	Label      string
	Default    string
	Validators []*Validator
	Serializer Serializer
}

func (f TextField) Element() Element {
	fs := NewFieldSchema(f.Key, String(f.Default), f.Validators...).
		WithLabel(f.Label).
		WithSerializer(f.Serializer)
	return Element{ID: f.Key, Kind: ElementText, Field: fs}
}

// CheckboxField is a boolean toggle.
type CheckboxField struct {
	Key        string
	Label      string
	Default    bool
	Validators []*Validator
	Serializer Serializer
}

func (f CheckboxField) Element() Element {
	fs := NewFieldSchema(f.Key, Bool(f.Default), f.Validators...).
		WithLabel(f.Label).
		WithSerializer(f.Serializer)
	return Element{ID: f.Key, Kind: ElementCheckbox, Field: fs}
}

// NumberField is a numeric input.
type NumberField struct {
	Key        string
	Label      string
	Default    float64
	Validators []*Validator
	Serializer Serializer
}

func (f NumberField) Element() Element {
	fs := NewFieldSchema(f.Key, Number(f.Default), f.Validators...).
		WithLabel(f.Label).
		WithSerializer(f.Serializer)
	return Element{ID: f.Key, Kind: ElementNumber, Field: fs}
}

// SelectField picks one of Options. The value is the chosen option string.
type SelectField struct {
	Key        string
	Label      string
	Options    []string
	Default    string
	Validators []*Validator
	Serializer Serializer
}

func (f SelectField) Element() Element {
	fs := NewFieldSchema(f.Key, String(f.Default), f.Validators...).
		WithLabel(f.Label).
		WithSerializer(f.Serializer)
	return Element{ID: f.Key, Kind: ElementSelect, Options: append([]string(nil), f.Options...), Field: fs}
}
