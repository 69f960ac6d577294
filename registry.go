package formvalidation

// Registry maps element kinds, and optionally individual element ids, to
// values of T supplied by a presentation layer (renderers, prompt functions).
// It is an ordinary value owned by the caller; there is no global instance.
type Registry[T any] struct {
	byKind map[string]T
	byID   map[string]T
}

// NewRegistry returns an empty Registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		byKind: map[string]T{},
		byID:   map[string]T{},
	}
}

// Register sets the entry used for elements of kind.
func (r *Registry[T]) Register(kind string, t T) *Registry[T] {
	r.byKind[kind] = t
	return r
}

// RegisterID sets an override for the element with the given id.
func (r *Registry[T]) RegisterID(id string, t T) *Registry[T] {
	r.byID[id] = t
	return r
}

// Resolve returns the id override for e if any, else the kind entry.
func (r *Registry[T]) Resolve(e Element) (T, bool) {
	if t, ok := r.byID[e.ID]; ok {
		return t, true
	}
	t, ok := r.byKind[e.Kind]
	return t, ok
}
