package formvalidation

import (
	"io"
	"log/slog"
	"sort"

	json "github.com/goccy/go-json"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Model is the state of one form session: current values, touched flags and
// the registered field schemas. Operations on unregistered keys never fail;
// such fields are treated as valid and are absent from serialized output.
//
// A Model is owned by a single goroutine and is not safe for concurrent use.
type Model struct {
	values  map[string]Value
	touched map[string]bool
	fields  map[string]*FieldSchema
	logger  *slog.Logger
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger used for debug events. By default nothing is
// logged.
func WithLogger(l *slog.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewModel returns an empty Model.
func NewModel(opts ...ModelOption) *Model {
	m := &Model{
		values:  map[string]Value{},
		touched: map[string]bool{},
		fields:  map[string]*FieldSchema{},
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// RegisterField stores fs under key, replacing any previous schema. The
// field's default seeds the value only when no value is set yet.
func (m *Model) RegisterField(key string, fs *FieldSchema) {
	if fs == nil {
		return
	}
	m.fields[key] = fs
	if _, ok := m.values[key]; !ok {
		m.values[key] = fs.Default
	}
	m.logger.Debug("field registered", "key", key, "default", fs.Default.String())
}

// IsRegistered reports whether key has a schema.
func (m *Model) IsRegistered(key string) bool {
	_, ok := m.fields[key]
	return ok
}

// Keys returns the registered keys in sorted order.
func (m *Model) Keys() []string {
	keys := make([]string, 0, len(m.fields))
	for k := range m.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SetValue overwrites the value of key. It does not mark the field touched.
func (m *Model) SetValue(key string, v Value) {
	m.values[key] = v
}

// Value returns the value of key, falling back to the registered default.
// It reports false for a key that has neither.
func (m *Model) Value(key string) (Value, bool) {
	if v, ok := m.values[key]; ok {
		return v, true
	}
	if fs, ok := m.fields[key]; ok {
		return fs.Default, true
	}
	return Value{}, false
}

// MarkTouched flags key as interacted with.
func (m *Model) MarkTouched(key string) {
	m.touched[key] = true
}

// IsTouched reports whether key has been marked touched.
func (m *Model) IsTouched(key string) bool {
	return m.touched[key]
}

// Error returns the validation message for key's current value, or "" when
// the value is valid or key is not registered.
func (m *Model) Error(key string) string {
	return Message(m.fieldErr(key))
}

// VisibleError is Error gated on the touched flag, which is what a
// presentation layer shows next to a field.
func (m *Model) VisibleError(key string) string {
	if !m.IsTouched(key) {
		return ""
	}
	return m.Error(key)
}

func (m *Model) fieldErr(key string) error {
	fs, ok := m.fields[key]
	if !ok {
		return nil
	}
	v, _ := m.Value(key)
	return fs.Validate(v)
}

// IsValid reports whether every registered field is valid. A Model without
// fields is valid.
func (m *Model) IsValid() bool {
	for key := range m.fields {
		if m.fieldErr(key) != nil {
			return false
		}
	}
	return true
}

// Errors returns the current error of each invalid registered field, or nil
// when the form is valid.
func (m *Model) Errors() validation.Errors {
	errs := validation.Errors{}
	for key := range m.fields {
		if err := m.fieldErr(key); err != nil {
			errs[key] = err
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate implements [validation.Validatable].
func (m *Model) Validate() error {
	if errs := m.Errors(); errs != nil {
		return errs
	}
	return nil
}

// ValidateAll marks every registered field touched so pending errors become
// visible. Unregistered keys are left alone.
func (m *Model) ValidateAll() {
	for key := range m.fields {
		m.touched[key] = true
	}
	m.logger.Debug("all fields touched", "fields", len(m.fields))
}

// SerializeAll returns the submission payload: every registered field's
// current value passed through its serializer. Omitted fields are absent.
func (m *Model) SerializeAll() map[string]Value {
	out := make(map[string]Value, len(m.fields))
	for key, fs := range m.fields {
		v, _ := m.Value(key)
		if sv, ok := fs.Serialize(v); ok {
			out[key] = sv
		}
	}
	return out
}

// MarshalPayload encodes SerializeAll as a JSON object.
func (m *Model) MarshalPayload() ([]byte, error) {
	return json.Marshal(m.SerializeAll())
}

// Submit runs the submit flow: every field is marked touched, then the
// payload is returned if the form is valid, otherwise the field errors.
func (m *Model) Submit() (map[string]Value, error) {
	m.ValidateAll()
	if errs := m.Errors(); errs != nil {
		m.logger.Debug("submit rejected", "errors", len(errs))
		return nil, errs
	}
	payload := m.SerializeAll()
	m.logger.Debug("submit accepted", "fields", len(payload))
	return payload, nil
}

// Reset clears every touched flag. Values are kept.
func (m *Model) Reset() {
	for key := range m.touched {
		m.touched[key] = false
	}
}
