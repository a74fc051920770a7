package codec

import "sync"

// Registry manages the available mipmap codec factories, looked up either
// by name or by content encoding tag.
type Registry struct {
	mu         sync.RWMutex
	byName     map[string]Factory
	byEncoding map[Encoding]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:     make(map[string]Factory),
		byEncoding: make(map[Encoding]Factory),
	}
}

var defaultRegistry = NewRegistry()

// Register registers a factory in the default registry under both its name
// and its content encoding.
func Register(enc Encoding, name string, f Factory) {
	defaultRegistry.Register(enc, name, f)
}

// Get retrieves a factory from the default registry by name.
func Get(name string) (Factory, error) {
	return defaultRegistry.Get(name)
}

// GetEncoding retrieves a factory from the default registry by content
// encoding.
func GetEncoding(enc Encoding) (Factory, error) {
	return defaultRegistry.GetEncoding(enc)
}

// List returns the names registered in the default registry.
func List() []string {
	return defaultRegistry.List()
}

// Register registers a factory under both its name and its content
// encoding.
func (r *Registry) Register(enc Encoding, name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byName[name] = f
	r.byEncoding[enc] = f
}

// Get retrieves a factory by name.
func (r *Registry) Get(name string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.byName[name]
	if !ok {
		return nil, ErrCodecNotFound
	}
	return f, nil
}

// GetEncoding retrieves a factory by content encoding.
func (r *Registry) GetEncoding(enc Encoding) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.byEncoding[enc]
	if !ok {
		return nil, ErrCodecNotFound
	}
	return f, nil
}

// List returns all registered names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	return names
}
